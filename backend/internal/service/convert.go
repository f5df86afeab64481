package service

import (
	"time"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/model"
)

// 模型 → 响应 DTO 的转换，各 Service 共用

func toUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toProfileResponse(p *model.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:             p.ProfileID,
		User:           toUserResponse(p.User),
		Role:           p.Role,
		Bio:            p.Bio,
		Skills:         p.Skills,
		CV:             p.CVPath,
		CompanyName:    p.CompanyName,
		Logo:           p.LogoPath,
		Phone:          p.Phone,
		College:        p.College,
		Degree:         p.Degree,
		GraduationYear: p.GraduationYear,
		Github:         p.Github,
		Linkedin:       p.Linkedin,
		Portfolio:      p.Portfolio,
	}
}

func toInternshipResponse(i *model.Internship, applicationsCount int64) *dto.InternshipResponse {
	if i == nil {
		return nil
	}
	return &dto.InternshipResponse{
		ID:                i.InternshipID,
		Poster:            toProfileResponse(i.Poster),
		Title:             i.Title,
		Description:       i.Description,
		SkillsRequired:    i.SkillsRequired,
		Stipend:           i.Stipend,
		Duration:          i.Duration,
		Location:          i.Location,
		Remote:            i.Remote,
		LastDate:          i.LastDate.Format("2006-01-02"),
		IsActive:          i.IsActive,
		CreatedAt:         i.CreatedAt.Format(time.RFC3339),
		ApplicationsCount: applicationsCount,
	}
}

func toApplicationResponse(a *model.Application) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}
	return &dto.ApplicationResponse{
		ID:          a.ApplicationID,
		Internship:  toInternshipResponse(a.Internship, 0),
		Student:     toProfileResponse(a.Student),
		CoverLetter: a.CoverLetter,
		CVCopy:      a.CVCopyPath,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt.Format(time.RFC3339),
	}
}
