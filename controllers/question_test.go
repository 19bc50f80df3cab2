package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestReorderQuestionsThenFetchSorted(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec("UPDATE `questions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `questions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `admin_logs`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("discordID", "1001")
	c.Set("userName", "Admin")
	c.Request = httptest.NewRequest("PUT", "/api/v1/admin/questions/reorder",
		strings.NewReader(`[{"question_id":2,"order_num":1,"section_order":1},{"question_id":1,"order_num":2,"section_order":1}]`))
	c.Request.Header.Set("Content-Type", "application/json")

	ReorderQuestions(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Fetches after the reorder come back sorted by (section_order, order_num).
	mock.ExpectQuery("SELECT .* FROM `questions` WHERE type_id = \\? ORDER BY section_order ASC, order_num ASC").
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "type_id", "order_num", "section_order"}).
			AddRow(2, 1, 1, 1).
			AddRow(1, 1, 2, 1))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/api/v1/admin/application-types/1/questions", nil)

	GetQuestions(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data []struct {
			QuestionID int `json:"question_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].QuestionID != 2 || body.Data[1].QuestionID != 1 {
		t.Fatalf("questions not in submitted order: %+v", body.Data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestReorderQuestionsRejectsEmptyPayload(t *testing.T) {
	newMockDB(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/api/v1/admin/questions/reorder", strings.NewReader(`[]`))
	c.Request.Header.Set("Content-Type", "application/json")

	ReorderQuestions(c)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
