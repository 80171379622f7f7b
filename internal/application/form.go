package application

import (
	"github.com/formlight/formlight/internal/config"
	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/apperr"
	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound        = apperr.NotFound("form not found")
	ErrInvalidFormID       = apperr.InvalidInput("invalid form id")
	ErrNotOwner            = apperr.Forbidden("owner role required")
	ErrNoGrant             = apperr.Forbidden("user has no role on this form")
	ErrOwnerGrantProtected = apperr.Forbidden("owner grant cannot be removed")
	ErrSlugTaken           = apperr.Conflict("form slug already in use")
)

// GrantOutcome reports whether a permission write created a new grant or
// replaced the role of an existing one.
type GrantOutcome string

const (
	GrantCreated GrantOutcome = "created"
	GrantUpdated GrantOutcome = "updated"
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{
		Repos: repos,
	}
}

// Create normalizes the request into a canonical schema, publishes it,
// and writes the form together with the author's owner grant in one
// transaction. On a slug collision the slug is re-derived once before
// reporting a conflict.
func (s *FormService) Create(req form.CreateFormRequestDTO, authorID string) (form.Form, []form.RoleInfo, error) {
	author, err := s.Repos.User.GetUserByID(authorID)
	if err != nil {
		return form.Form{}, nil, ErrUserNotFound
	}

	f := form.Normalize(req, authorID)

	for attempt := 0; ; attempt++ {
		err = s.Repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.Form.CreateForm(&f); err != nil {
				return err
			}
			return tx.FormRole.UpsertFormRole(&form.FormRole{
				FormID: f.ID,
				UserID: authorID,
				Role:   form.RoleOwner,
			})
		})
		if err == nil {
			break
		}
		if err == gorm.ErrDuplicatedKey && attempt == 0 {
			f.Slug = form.NewSlug(req.Title)
			continue
		}
		if err == gorm.ErrDuplicatedKey {
			return form.Form{}, nil, ErrSlugTaken
		}
		return form.Form{}, nil, apperr.Internal(err)
	}

	roles := []form.RoleInfo{{
		Role: form.RoleOwner,
		User: authorID,
		Name: author.Name,
	}}
	return f, roles, nil
}

func (s *FormService) FindByID(id string) (form.Form, error) {
	if !oid.IsValid(id) {
		return form.Form{}, ErrInvalidFormID
	}
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return form.Form{}, ErrFormNotFound
		}
		return form.Form{}, apperr.Internal(err)
	}
	return f, nil
}

// FindBySlug serves the public fill-out view. Unpublished forms are
// indistinguishable from absent ones.
func (s *FormService) FindBySlug(slug string) (form.BasicInfo, error) {
	f, err := s.Repos.Form.GetFormBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return form.BasicInfo{}, ErrFormNotFound
		}
		return form.BasicInfo{}, apperr.Internal(err)
	}
	if !f.IsPublished {
		return form.BasicInfo{}, ErrFormNotFound
	}
	return form.BasicInfo{
		ID:          f.ID,
		Title:       f.Title,
		Slug:        f.Slug,
		Description: f.Description,
		Questions:   f.Questions,
	}, nil
}

// ListForUser returns the forms visible to the user, newest first.
// Admins see every live form; everyone else sees only forms they hold a
// grant on.
func (s *FormService) ListForUser(userID string, isAdmin bool) ([]form.ListItem, error) {
	var forms []form.Form
	var err error

	if isAdmin {
		forms, err = s.Repos.Form.ListForms()
	} else {
		var grants []form.FormRole
		grants, err = s.Repos.FormRole.GetFormRolesByUserID(userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		ids := make([]string, 0, len(grants))
		for _, g := range grants {
			ids = append(ids, g.FormID)
		}
		if len(ids) == 0 {
			return []form.ListItem{}, nil
		}
		forms, err = s.Repos.Form.GetFormsByIDs(ids)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	formIDs := make([]string, 0, len(forms))
	for _, f := range forms {
		formIDs = append(formIDs, f.ID)
	}
	submissionCounts, err := s.Repos.Submission.CountGroupedByForm(formIDs)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	items := make([]form.ListItem, 0, len(forms))
	for _, f := range forms {
		item := form.ListItem{
			Form:            f,
			SubmissionCount: submissionCounts[f.ID],
		}

		grants, err := s.Repos.FormRole.GetFormRolesByFormID(f.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		item.RoleCount = int64(len(grants))
		for _, g := range grants {
			info := form.RoleInfo{Role: g.Role, User: g.UserID}
			if g.User != nil {
				info.Name = g.User.Name
			}
			item.Roles = append(item.Roles, info)
		}

		items = append(items, item)
	}
	return items, nil
}

// SoftDelete hides the form from every read path. Only an owner may
// delete; the row itself is kept.
func (s *FormService) SoftDelete(id, userID string) (form.Form, error) {
	f, err := s.FindByID(id)
	if err != nil {
		return form.Form{}, err
	}

	isOwner, err := s.Repos.FormRole.HasRole(id, userID, form.RoleOwner)
	if err != nil {
		return form.Form{}, apperr.Internal(err)
	}
	if !isOwner {
		return form.Form{}, ErrNotOwner
	}

	if err := s.Repos.Form.SoftDeleteForm(id); err != nil {
		return form.Form{}, apperr.Internal(err)
	}
	return f, nil
}

// PermissionsAdd grants or re-grants a role to the user addressed by
// email. Granting to a user that already holds a role replaces the role
// rather than erroring.
func (s *FormService) PermissionsAdd(formID, email string, role form.Role, actorID string) (GrantOutcome, form.FormRole, error) {
	if _, err := s.FindByID(formID); err != nil {
		return "", form.FormRole{}, err
	}
	if err := s.checkGrantPolicy(formID, actorID); err != nil {
		return "", form.FormRole{}, err
	}

	target, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return "", form.FormRole{}, ErrUserNotFound
	}

	outcome := GrantCreated
	if _, err := s.Repos.FormRole.GetFormRole(formID, target.ID); err == nil {
		outcome = GrantUpdated
	} else if err != gorm.ErrRecordNotFound {
		return "", form.FormRole{}, apperr.Internal(err)
	}

	grant := form.FormRole{
		FormID: formID,
		UserID: target.ID,
		Role:   role,
	}
	if err := s.Repos.FormRole.UpsertFormRole(&grant); err != nil {
		return "", form.FormRole{}, apperr.Internal(err)
	}
	return outcome, grant, nil
}

// PermissionsRemove revokes the grant held by the user addressed by
// email. Owner grants are never removable through this path.
func (s *FormService) PermissionsRemove(formID, email, actorID string) (form.FormRole, error) {
	if _, err := s.FindByID(formID); err != nil {
		return form.FormRole{}, err
	}
	if err := s.checkGrantPolicy(formID, actorID); err != nil {
		return form.FormRole{}, err
	}

	target, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return form.FormRole{}, ErrUserNotFound
	}

	grant, err := s.Repos.FormRole.GetFormRole(formID, target.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return form.FormRole{}, ErrNoGrant
		}
		return form.FormRole{}, apperr.Internal(err)
	}
	if grant.Role == form.RoleOwner {
		return form.FormRole{}, ErrOwnerGrantProtected
	}

	if err := s.Repos.FormRole.DeleteFormRole(formID, target.ID); err != nil {
		return form.FormRole{}, apperr.Internal(err)
	}
	return grant, nil
}

func (s *FormService) checkGrantPolicy(formID, actorID string) error {
	if !config.PermissionsOwnerOnly {
		return nil
	}
	isOwner, err := s.Repos.FormRole.HasRole(formID, actorID, form.RoleOwner)
	if err != nil {
		return apperr.Internal(err)
	}
	if !isOwner {
		return ErrNotOwner
	}
	return nil
}
