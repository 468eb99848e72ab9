package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap admin created on an empty database. The password is meant to be
// changed on first login.
const (
	defaultAdminName     = "Admin User"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "Admin@123"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepository staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepository,
	}
}

func (s *StaffServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toStaffResponse(member staff.StaffMember) staff.StaffResponse {
	return staff.StaffResponse{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Role:      string(member.Role),
		CreatedAt: member.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Register implements staff.StaffService.
func (s *StaffServiceImpl) Register(ctx context.Context, actx auth.Context, req staff.RegisterRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	// Only admins may assign a role; everyone else registers as staff.
	role := staff.RoleStaff
	if req.Role != "" && actx.IsAdmin() {
		role = staff.Role(req.Role)
	}

	passwordHash, err := s.hashPassword(req.Password)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	member, err := s.StaffRepository.Create(ctx, staff.StaffMember{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		if err == staff.ErrEmailExists {
			return staff.StaffResponse{}, err
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return toStaffResponse(member), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, actx auth.Context) (staff.ListStaffResponse, error) {
	if !actx.IsAdmin() {
		return staff.ListStaffResponse{}, staff.ErrAdminPrivilegeRequired
	}

	members, err := s.StaffRepository.List(ctx)
	if err != nil {
		return staff.ListStaffResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toStaffResponse(member))
	}

	return staff.ListStaffResponse{
		TotalCount: len(responses),
		Staff:      responses,
	}, nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, actx auth.Context, id string) (staff.StaffResponse, error) {
	if id != actx.StaffID && !actx.IsAdmin() {
		return staff.StaffResponse{}, staff.ErrAdminPrivilegeRequired
	}

	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		if err == staff.ErrStaffNotFound {
			return staff.StaffResponse{}, err
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return toStaffResponse(member), nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, actx auth.Context, id string) error {
	if !actx.IsAdmin() {
		return staff.ErrAdminPrivilegeRequired
	}
	if id == actx.StaffID {
		return staff.ErrCannotDeleteSelf
	}

	if err := s.StaffRepository.Delete(ctx, id); err != nil {
		if err == staff.ErrStaffNotFound {
			return err
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	return nil
}

// ChangePassword implements staff.StaffService.
func (s *StaffServiceImpl) ChangePassword(ctx context.Context, actx auth.Context, req staff.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	member, err := s.StaffRepository.GetByID(ctx, actx.StaffID)
	if err != nil {
		if err == staff.ErrStaffNotFound {
			return err
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return staff.ErrPasswordMismatch
	}

	passwordHash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.StaffRepository.UpdatePassword(ctx, member.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// EnsureDefaultAdmin implements staff.StaffService.
func (s *StaffServiceImpl) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.StaffRepository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := s.hashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.StaffRepository.Create(ctx, staff.StaffMember{
		Name:         defaultAdminName,
		Email:        defaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         staff.RoleAdmin,
	})
	if err != nil {
		if err == staff.ErrEmailExists {
			return nil
		}
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	slog.Info("created default admin account", "email", defaultAdminEmail)
	return nil
}
