package handler

import (
	"lets-heal/internal/domain"
	"lets-heal/internal/dto"
)

func toQuestionResponse(q *domain.Question) *dto.QuestionResponse {
	options := make([]dto.OptionResponse, len(domain.Options))
	for i, o := range domain.Options {
		options[i] = dto.OptionResponse{Key: string(o), Text: q.Options[i]}
	}
	return &dto.QuestionResponse{
		ID:       q.ID,
		Order:    q.Order,
		Text:     q.Text,
		Options:  options,
		Required: q.Required,
	}
}

func toAdminQuestionResponse(q *domain.Question) dto.AdminQuestionResponse {
	return dto.AdminQuestionResponse{
		ID:       q.ID,
		Order:    q.Order,
		Text:     q.Text,
		OptionA:  q.Options[0],
		OptionB:  q.Options[1],
		OptionC:  q.Options[2],
		OptionD:  q.Options[3],
		ScoreA:   q.Scores[0],
		ScoreB:   q.Scores[1],
		ScoreC:   q.Scores[2],
		ScoreD:   q.Scores[3],
		Required: q.Required,
	}
}

func toResultRangeResponse(r *domain.ResultRange) dto.ResultRangeResponse {
	return dto.ResultRangeResponse{
		ID:         r.ID,
		MinScore:   r.MinScore,
		MaxScore:   r.MaxScore,
		ResultText: r.ResultText,
	}
}

func toQuizDefinitionResponse(q *domain.Quiz) dto.QuizDefinitionResponse {
	resp := dto.QuizDefinitionResponse{
		ID:           q.ID,
		Title:        q.Title,
		Description:  q.Description,
		IsActive:     q.IsActive,
		Questions:    make([]dto.AdminQuestionResponse, 0, len(q.Questions)),
		ResultRanges: make([]dto.ResultRangeResponse, 0, len(q.ResultRanges)),
	}
	for _, question := range q.Questions {
		resp.Questions = append(resp.Questions, toAdminQuestionResponse(question))
	}
	for _, r := range q.ResultRanges {
		resp.ResultRanges = append(resp.ResultRanges, toResultRangeResponse(r))
	}
	return resp
}

func toAnswerResponse(a *domain.Answer) dto.AnswerResponse {
	return dto.AnswerResponse{
		AttemptID:    a.AttemptID,
		QuestionID:   a.QuestionID,
		ChosenOption: string(a.ChosenOption),
		AnsweredAt:   a.AnsweredAt,
	}
}

func toAttemptResultResponse(a *domain.Attempt) dto.AttemptResultResponse {
	resp := dto.AttemptResultResponse{
		AttemptID:   a.ID,
		QuizID:      a.QuizID,
		CustomerID:  a.CustomerID,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		IsCompleted: a.IsCompleted,
		TotalScore:  a.TotalScore,
		ResultText:  a.ResultText,
		Answers:     make([]dto.AnswerResponse, 0, len(a.Answers)),
	}
	for _, answer := range a.Answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(answer))
	}
	return resp
}

func toAppointmentResponse(a *domain.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:               a.ID,
		CustomerID:       a.CustomerID,
		TherapistID:      a.TherapistID,
		ConsultationType: a.ConsultationType,
		AppointmentType:  a.AppointmentType,
		AppointmentDate:  a.Date,
		AppointmentTime:  a.Time,
		HospitalID:       a.HospitalID,
		HospitalName:     a.HospitalName,
		HospitalAddress:  a.HospitalAddress,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
	}
}

func toTherapistResponse(t *domain.Therapist) dto.TherapistResponse {
	return dto.TherapistResponse{
		ID:             t.ID,
		Name:           t.Name,
		Email:          t.Email,
		Specialization: t.Specialization,
		HospitalID:     t.HospitalID,
	}
}

func toHospitalResponse(h *domain.Hospital) dto.HospitalResponse {
	return dto.HospitalResponse{ID: h.ID, Name: h.Name, Address: h.Address}
}

func questionPatchFrom(req dto.QuestionPatchRequest) domain.QuestionPatch {
	patch := domain.QuestionPatch{
		Order:    req.Order,
		Text:     req.Text,
		Required: req.Required,
		Options:  map[domain.Option]string{},
		Scores:   map[domain.Option]int{},
	}
	for o, text := range map[domain.Option]*string{
		domain.OptionA: req.OptionA, domain.OptionB: req.OptionB,
		domain.OptionC: req.OptionC, domain.OptionD: req.OptionD,
	} {
		if text != nil {
			patch.Options[o] = *text
		}
	}
	for o, score := range map[domain.Option]*int{
		domain.OptionA: req.ScoreA, domain.OptionB: req.ScoreB,
		domain.OptionC: req.ScoreC, domain.OptionD: req.ScoreD,
	} {
		if score != nil {
			patch.Scores[o] = *score
		}
	}
	return patch
}
