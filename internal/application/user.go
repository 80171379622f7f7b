package application

import (
	"strings"
	"time"

	"github.com/formlight/formlight/internal/api/middleware"
	"github.com/formlight/formlight/internal/config"
	"github.com/formlight/formlight/internal/domain/user"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/apperr"
	"github.com/formlight/formlight/pkg/mailer"
	"github.com/formlight/formlight/pkg/oid"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken        = apperr.Conflict("email already registered")
	ErrUserNotFound      = apperr.NotFound("user not found")
	ErrInvalidUserID     = apperr.InvalidInput("invalid user id")
	ErrInvalidPassword   = apperr.Forbidden("invalid password")
	ErrIncorrectPassword = apperr.Forbidden("old password is incorrect")
)

type UserService struct {
	Repos  *repository.Repos
	Mailer mailer.Mailer
}

func NewUserService(repos *repository.Repos, mail mailer.Mailer) *UserService {
	return &UserService{
		Repos:  repos,
		Mailer: mail,
	}
}

func (s *UserService) Register(input user.CreateUserDTO) (user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return user.User{}, ErrEmailTaken
	}
	if err != gorm.ErrRecordNotFound {
		return user.User{}, apperr.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, apperr.Internal(err)
	}

	usr := user.User{
		Email:    input.Email,
		Name:     input.Name,
		LastName: input.LastName,
		Password: string(hashed),
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, apperr.Internal(err)
	}
	return usr, nil
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidPassword
	}

	expires, err := time.ParseDuration(config.JwtExpires)
	if err != nil {
		expires = 24 * time.Hour
	}
	token, err := middleware.GenerateToken(usr.ID, usr.Email, usr.IsAdmin, expires)
	if err != nil {
		return user.User{}, "", apperr.Internal(err)
	}

	return usr, token, nil
}

func (s *UserService) FindOne(id string) (user.User, error) {
	if !oid.IsValid(id) {
		return user.User{}, ErrInvalidUserID
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) FindAll() ([]user.User, error) {
	users, err := s.Repos.User.GetAllUsers()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) Remove(id string) (user.User, error) {
	usr, err := s.FindOne(id)
	if err != nil {
		return user.User{}, err
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return user.User{}, apperr.Internal(err)
	}
	return usr, nil
}

func (s *UserService) UpdatePassword(id, oldPassword, newPassword string) error {
	usr, err := s.FindOne(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(oldPassword)); err != nil {
		return ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	usr.Password = string(hashed)
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SendNewPassword replaces the user's password with a generated one and
// mails it. The mail goes out only after the new hash is stored, so a
// mailed password is always the live one.
func (s *UserService) SendNewPassword(email string) error {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	password := generatePassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	usr.Password = string(hashed)
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return apperr.Internal(err)
	}

	if err := s.Mailer.SendNewPassword(usr.Email, password); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func generatePassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
