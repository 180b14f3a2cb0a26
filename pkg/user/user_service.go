package user

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/pkg/jwt"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, email, password string, params domain.CreateUserParams) (*entities.User, error)
		CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error)
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID uint, req domain.UpdateUserRequest, partial bool) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	if mailer == nil {
		mailer = mailing.NopMailer{}
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// NormalizeEmail lowercases the domain part of an email address and leaves
// the local part untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

func RoleOf(user *entities.User) string {
	if user.IsStaff {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (s *userService) newUser(ctx context.Context, email, password string, params domain.CreateUserParams) (*entities.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	user := &entities.User{
		Email:    email,
		Name:     strings.TrimSpace(params.Name),
		IsActive: true,
	}
	if err := setPassword(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

func setPassword(user *entities.User, password string) error {
	if password == "" {
		user.Password = ""
		return nil
	}
	if len(password) > utils.MaxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}

func (s *userService) CreateUser(ctx context.Context, email, password string, params domain.CreateUserParams) (*entities.User, error) {
	user, err := s.newUser(ctx, email, password, params)
	if err != nil {
		return nil, err
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.newUser(ctx, email, password, domain.CreateUserParams{})
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	user, err := s.CreateUser(ctx, req.Email, req.Password, domain.CreateUserParams{Name: req.Name})
	if err != nil {
		return domain.UserResponse{}, err
	}

	body := mailing.WelcomeBody(user.Name, utils.GetConfig("APP_URL"))
	if err := s.mailer.SendMail(user.Email, "Welcome to Recipe API", body); err != nil {
		log.Warnf("welcome mail to user %d not sent: %v", user.ID, err)
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !user.IsActive || !utils.CheckPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), RoleOf(user))
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, req domain.UpdateUserRequest, partial bool) (domain.UserResponse, error) {
	if !partial {
		if req.Email == nil {
			return domain.UserResponse{}, domain.NewValidationError("email: this field is required")
		}
		if req.Password == nil {
			return domain.UserResponse{}, domain.NewValidationError("password: this field is required")
		}
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email == "" {
			return domain.UserResponse{}, domain.ErrEmailRequired
		}
		exists, err := s.userRepository.CheckEmailExists(ctx, email, user.ID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if exists {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Password != nil {
		if err := setPassword(user, *req.Password); err != nil {
			return domain.UserResponse{}, err
		}
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) getUser(ctx context.Context, userID uint) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		Email: user.Email,
		Name:  user.Name,
	}
}
