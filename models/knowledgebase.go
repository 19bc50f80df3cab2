package models

import (
	"time"

	"gorm.io/datatypes"
)

// KnowledgebasePage represents the knowledgebase_pages table: a generic
// bilingual structured-document store used for rules pages, the FAQ and
// the situation-count tables. Each data blob is a document of the form
// {title, intro, sections:[{title, items:[string]}]}.
type KnowledgebasePage struct {
	PageID   int            `gorm:"primaryKey;column:page_id" json:"page_id"`
	Slug     string         `gorm:"column:slug;uniqueIndex;size:191" json:"slug"`
	DataEn   datatypes.JSON `gorm:"column:data_en" json:"data_en"`
	DataSi   datatypes.JSON `gorm:"column:data_si" json:"data_si"`
	CreateAt time.Time      `gorm:"column:create_at" json:"create_at"`
	UpdateAt time.Time      `gorm:"column:update_at" json:"update_at"`
}

func (KnowledgebasePage) TableName() string {
	return "knowledgebase_pages"
}
