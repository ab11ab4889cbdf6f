package entity

import (
	"strings"
)

type Book struct {
	BaseNoDelete
	Title  string `db:"title"`
	Author string `db:"author"`
}

// Validate checks field constraints and returns every violation keyed by
// field name. The result is recomputed on each call.
func (b *Book) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(b.Title) == "" {
		errs["title"] = MsgBlank
	}
	if strings.TrimSpace(b.Author) == "" {
		errs["author"] = MsgBlank
	}

	return errs
}

func (b *Book) IsValid() bool {
	return len(b.Validate()) == 0
}
