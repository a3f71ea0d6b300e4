package service

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/go-ldap/ldap/v3"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ldapClient is the subset of *ldap.Conn used by the directory service
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

var directoryAttributes = []string{"cn", "displayName", "mail", "department", "title"}

// DirectoryUser represents a subset of LDAP user attributes returned by the search
type DirectoryUser struct {
	DN          string `json:"dn"`
	CN          string `json:"cn"`
	DisplayName string `json:"display_name"`
	Mail        string `json:"mail"`
	Department  string `json:"department"`
	Title       string `json:"title"`
}

// ImportDirectoryUserRequest represents the request to import a directory user
type ImportDirectoryUserRequest struct {
	Login          string `json:"login" validate:"required,min=2,max=64"`
	DepartmentName string `json:"department_name,omitempty" validate:"max=100"`
}

// DirectoryService looks up plant staff in LDAP and imports them as users
type DirectoryService struct {
	cfg       *config.Config
	userRepo  repository.UserRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

var _ DirectoryServiceInterface = (*DirectoryService)(nil)

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config, userRepo repository.UserRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DirectoryService {
	return &DirectoryService{
		cfg:       cfg,
		userRepo:  userRepo,
		deptRepo:  deptRepo,
		validator: validator,
	}
}

// SearchUsersByCN searches users by common name (cn prefix match)
func (s *DirectoryService) SearchUsersByCN(ctx context.Context, cn string) ([]DirectoryUser, error) {
	if !s.cfg.LDAPEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}
	cn = strings.TrimSpace(cn)
	if cn == "" {
		return nil, apperrors.NewValidationError("cn", "search term is required")
	}
	return s.search(ctx, "(cn="+ldap.EscapeFilter(cn)+"*)", 0)
}

// ImportUser creates a local user from the directory entry whose cn equals the login
func (s *DirectoryService) ImportUser(ctx context.Context, req *ImportDirectoryUserRequest) (*UserResponse, error) {
	if !s.cfg.LDAPEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}
	req.Login = strings.TrimSpace(req.Login)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByLogin(ctx, req.Login)
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	entries, err := s.search(ctx, "(cn="+ldap.EscapeFilter(req.Login)+")", 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrDirectoryUserNotFound
	}
	entry := entries[0]

	user := &models.User{
		Login:  req.Login,
		Name:   entry.DisplayName,
		Email:  entry.Mail,
		Active: true,
	}
	if user.Name == "" {
		user.Name = req.Login
	}

	deptName := req.DepartmentName
	if deptName == "" {
		deptName = entry.Department
	}
	if deptName != "" {
		dept, err := s.deptRepo.GetByName(ctx, deptName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		user.DepartmentID = &dept.ID
		user.Department = dept
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"login": user.Login,
		"dn":    entry.DN,
	}).Info("Imported directory user")
	return toUserResponse(user), nil
}

func (s *DirectoryService) search(ctx context.Context, filter string, sizeLimit int) ([]DirectoryUser, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		sizeLimit,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		directoryAttributes,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryUser{
			DN:          e.DN,
			CN:          e.GetAttributeValue("cn"),
			DisplayName: e.GetAttributeValue("displayName"),
			Mail:        e.GetAttributeValue("mail"),
			Department:  e.GetAttributeValue("department"),
			Title:       e.GetAttributeValue("title"),
		})
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"filter":  filter,
		"results": len(out),
	}).Debug("Directory search")
	return out, nil
}
