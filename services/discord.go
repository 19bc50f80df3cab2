package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// TokenEndpoint is Discord's OAuth2 token exchange URL. Overridable in
// tests.
var TokenEndpoint = "https://discord.com/api/oauth2/token"

// OAuthClient is the HTTP client used for the token exchange.
var OAuthClient = http.DefaultClient

var (
	botOnce    sync.Once
	botSession *discordgo.Session
)

// ExchangeCode swaps an OAuth authorization code for an access token.
func ExchangeCode(code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", os.Getenv("DISCORD_CLIENT_ID"))
	form.Set("client_secret", os.Getenv("DISCORD_CLIENT_SECRET"))
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", os.Getenv("DISCORD_REDIRECT_URI"))

	resp, err := OAuthClient.PostForm(TokenEndpoint, form)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("token exchange decode failed: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned no access token")
	}
	return body.AccessToken, nil
}

// FetchProfile reads the signed-in user's Discord profile with their
// OAuth bearer token.
func FetchProfile(accessToken string) (*discordgo.User, error) {
	session, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, err
	}
	user, err := session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	return user, nil
}

// bot returns the shared bot-token REST session, nil when no bot token
// is configured. The gateway is never opened; only REST calls are made.
func bot() *discordgo.Session {
	botOnce.Do(func() {
		token := os.Getenv("DISCORD_BOT_TOKEN")
		if token == "" {
			return
		}
		session, err := discordgo.New("Bot " + token)
		if err != nil {
			log.Printf("discord: bot session init failed: %v", err)
			return
		}
		botSession = session
	})
	return botSession
}

// JoinGuild adds the user to the community guild with their OAuth
// token. Best effort: failures are logged and never block sign-in.
func JoinGuild(discordID, accessToken string) {
	session := bot()
	guildID := os.Getenv("DISCORD_GUILD_ID")
	if session == nil || guildID == "" {
		return
	}

	err := session.GuildMemberAdd(guildID, discordID, &discordgo.GuildMemberAddParams{
		AccessToken: accessToken,
	})
	if err != nil {
		// Already-a-member responses are expected noise.
		if !strings.Contains(err.Error(), "204") {
			log.Printf("discord: guild join for %s failed: %v", discordID, err)
		}
	}
}

// GrantRole assigns a guild role to the user. Best effort.
func GrantRole(discordID, roleID string) {
	session := bot()
	guildID := os.Getenv("DISCORD_GUILD_ID")
	if session == nil || guildID == "" || roleID == "" {
		return
	}

	if err := session.GuildMemberRoleAdd(guildID, discordID, roleID); err != nil {
		log.Printf("discord: role grant %s for %s failed: %v", roleID, discordID, err)
	}
}
