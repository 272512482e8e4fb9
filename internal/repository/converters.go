package repository

import (
	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"
)

func toDomainIdentity(m *models.Identity) *domain.Identity {
	if m == nil {
		return nil
	}
	return &domain.Identity{
		ID:           m.ID,
		Account:      domain.AccountRef{Role: domain.Role(m.Role), ID: m.AccountID},
		DisplayName:  m.DisplayName.String,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainIdentity(d *domain.Identity) *models.Identity {
	if d == nil {
		return nil
	}
	return &models.Identity{
		ID:           d.ID,
		Role:         string(d.Account.Role),
		AccountID:    d.Account.ID,
		DisplayName:  util.StringToNullString(d.DisplayName),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainTherapist(m *models.Therapist) *domain.Therapist {
	if m == nil {
		return nil
	}
	return &domain.Therapist{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Specialization: m.Specialization.String,
		HospitalID:     m.HospitalID.String,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
	}
}

func toDomainHospital(m *models.Hospital) *domain.Hospital {
	if m == nil {
		return nil
	}
	return &domain.Hospital{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description.String,
		IsActive:    m.IsActive == 1,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:        m.ID,
		QuizID:    m.QuizID,
		Order:     m.Order,
		Text:      m.Text,
		Options:   [4]string{m.OptionA, m.OptionB, m.OptionC, m.OptionD},
		Scores:    [4]int{m.ScoreA, m.ScoreB, m.ScoreC, m.ScoreD},
		Required:  m.IsRequired == 1,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainQuestion(d *domain.Question) *models.Question {
	if d == nil {
		return nil
	}
	return &models.Question{
		ID:         d.ID,
		QuizID:     d.QuizID,
		Order:      d.Order,
		Text:       d.Text,
		OptionA:    d.Options[0],
		OptionB:    d.Options[1],
		OptionC:    d.Options[2],
		OptionD:    d.Options[3],
		ScoreA:     d.Scores[0],
		ScoreB:     d.Scores[1],
		ScoreC:     d.Scores[2],
		ScoreD:     d.Scores[3],
		IsRequired: util.BoolToInt(d.Required),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDomainResultRange(m *models.ResultRange) *domain.ResultRange {
	if m == nil {
		return nil
	}
	return &domain.ResultRange{
		ID:         m.ID,
		QuizID:     m.QuizID,
		MinScore:   m.MinScore,
		MaxScore:   m.MaxScore,
		ResultText: m.ResultText,
		CreatedAt:  m.CreatedAt,
	}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	return &domain.Attempt{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		QuizID:      m.QuizID,
		StartedAt:   m.StartedAt,
		CompletedAt: util.NullTimeToPtr(m.CompletedAt),
		TotalScore:  util.NullInt64ToIntPtr(m.TotalScore),
		ResultText:  util.NullStringToPtr(m.ResultText),
		IsCompleted: m.IsCompleted == 1,
	}
}

func fromDomainAttempt(d *domain.Attempt) *models.QuizAttempt {
	if d == nil {
		return nil
	}
	return &models.QuizAttempt{
		ID:          d.ID,
		CustomerID:  d.CustomerID,
		QuizID:      d.QuizID,
		StartedAt:   d.StartedAt,
		CompletedAt: util.TimePtrToNullTime(d.CompletedAt),
		TotalScore:  util.IntPtrToNullInt64(d.TotalScore),
		ResultText:  util.StringPtrToNullString(d.ResultText),
		IsCompleted: util.BoolToInt(d.IsCompleted),
	}
}

func toDomainAnswer(m *models.QuizAnswer) *domain.Answer {
	if m == nil {
		return nil
	}
	return &domain.Answer{
		AttemptID:    m.AttemptID,
		QuestionID:   m.QuestionID,
		ChosenOption: domain.Option(m.ChosenOption),
		AnsweredAt:   m.AnsweredAt,
	}
}

func toDomainAppointment(m *models.Appointment) *domain.Appointment {
	if m == nil {
		return nil
	}
	return &domain.Appointment{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		TherapistID:      m.TherapistID,
		ConsultationType: m.ConsultationType,
		AppointmentType:  m.AppointmentType,
		Date:             m.AppointmentDate,
		Time:             m.AppointmentTime,
		HospitalID:       m.HospitalID.String,
		HospitalName:     m.HospitalName.String,
		HospitalAddress:  m.HospitalAddress.String,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
	}
}

func fromDomainAppointment(d *domain.Appointment) *models.Appointment {
	if d == nil {
		return nil
	}
	return &models.Appointment{
		ID:               d.ID,
		CustomerID:       d.CustomerID,
		TherapistID:      d.TherapistID,
		ConsultationType: d.ConsultationType,
		AppointmentType:  d.AppointmentType,
		AppointmentDate:  d.Date,
		AppointmentTime:  d.Time,
		HospitalID:       util.StringToNullString(d.HospitalID),
		HospitalName:     util.StringToNullString(d.HospitalName),
		HospitalAddress:  util.StringToNullString(d.HospitalAddress),
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
	}
}
