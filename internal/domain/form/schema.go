package form

import (
	"fmt"

	"github.com/formlight/formlight/pkg/oid"
	"github.com/gosimple/slug"
)

// NewSlug derives a lower-cased URL-safe slug from the title plus a short
// random disambiguator. Collisions are unlikely but not impossible; the
// unique index on forms.slug is the real guarantee and creation retries
// on a violation.
func NewSlug(title string) string {
	return slug.Make(fmt.Sprintf("%s %s", title, oid.New()[:8]))
}

// Normalize turns a raw creation request into the canonical storable
// schema. Every question and option receives a fresh server-side id so
// answers can reference schema elements stably; client-supplied ids are
// discarded. Options with an empty value are dropped. A nil options list
// stays nil, which keeps it out of the stored document entirely.
func Normalize(req CreateFormRequestDTO, authorID string) Form {
	questions := make([]Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		question := Question{
			ID:          oid.New(),
			Title:       q.Title,
			Placeholder: q.Placeholder,
			IsRequired:  q.IsRequired,
			Type:        q.Type,
			Order:       q.Order,
		}
		if q.Options != nil {
			options := make([]QuestionOption, 0, len(q.Options))
			for _, opt := range q.Options {
				if opt.Value == "" {
					continue
				}
				options = append(options, QuestionOption{
					Key:   oid.New(),
					Value: opt.Value,
					Order: opt.Order,
				})
			}
			question.Options = options
		}
		questions = append(questions, question)
	}

	return Form{
		ID:          oid.New(),
		Title:       req.Title,
		Slug:        NewSlug(req.Title),
		Description: req.Description,
		Questions:   questions,
		IsPublished: true,
		AuthorID:    authorID,
	}
}
