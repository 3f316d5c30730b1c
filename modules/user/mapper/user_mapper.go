package mapper

import (
	"scheduler-api/modules/user/dto"
	"scheduler-api/modules/user/entity"
)

func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Type:      u.Type,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToLoginResponse(u *entity.User) *dto.LoginResponse {
	return &dto.LoginResponse{ID: u.ID, Email: u.Email}
}

func ToUserDetailResponse(u *entity.User, hosted, guest []entity.UserMeeting, availabilities []entity.UserAvailability) *dto.UserDetailResponse {
	return &dto.UserDetailResponse{
		UserResponse:   *ToUserResponse(u),
		HostedMeetings: ToMeetingSummaries(hosted),
		GuestMeetings:  ToMeetingSummaries(guest),
		Availabilities: ToAvailabilitySummaries(availabilities),
	}
}

func ToMeetingSummaries(items []entity.UserMeeting) []dto.MeetingSummary {
	out := make([]dto.MeetingSummary, 0, len(items))
	for _, m := range items {
		out = append(out, dto.MeetingSummary{
			ID:          m.ID,
			Date:        m.Date,
			Description: m.Description,
			Duration:    m.Duration,
			Timezone:    m.Timezone,
			Status:      m.Status,
		})
	}
	return out
}

func ToAvailabilitySummaries(items []entity.UserAvailability) []dto.AvailabilitySummary {
	out := make([]dto.AvailabilitySummary, 0, len(items))
	for _, a := range items {
		out = append(out, dto.AvailabilitySummary{ID: a.ID, TimeSlot: a.TimeSlot})
	}
	return out
}

func ToUserEntity(req *dto.CreateUserRequest) *entity.User {
	return &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Type:  req.Type,
	}
}
