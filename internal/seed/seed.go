// Package seed loads initial quiz content, hospitals and accounts from a
// YAML file into the store.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"lets-heal/internal/domain"
	"lets-heal/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the top-level layout of a seed file.
type File struct {
	Quiz      *Quiz      `yaml:"quiz"`
	Hospitals []Hospital `yaml:"hospitals"`
	Accounts  Accounts   `yaml:"accounts"`
}

type Quiz struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	Description  string        `yaml:"description"`
	Active       bool          `yaml:"active"`
	Questions    []Question    `yaml:"questions"`
	ResultRanges []ResultRange `yaml:"result_ranges"`
}

type Question struct {
	Order    int               `yaml:"order"`
	Text     string            `yaml:"text"`
	Options  map[string]string `yaml:"options"`
	Scores   map[string]int    `yaml:"scores"`
	Required *bool             `yaml:"required"`
}

type ResultRange struct {
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
	Text string `yaml:"text"`
}

type Hospital struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type Accounts struct {
	Customers  []Account `yaml:"customers"`
	Therapists []Account `yaml:"therapists"`
	Admins     []Account `yaml:"admins"`
}

// Account is a seeded login. Hospital names a seeded hospital for therapists.
type Account struct {
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	Phone          string `yaml:"phone"`
	Specialization string `yaml:"specialization"`
	Hospital       string `yaml:"hospital"`
}

// Load reads and parses the seed file at path.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes seed YAML.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Summary counts what a run created.
type Summary struct {
	Quizzes      int
	Questions    int
	ResultRanges int
	Hospitals    int
	Accounts     int
}

// Seeder writes a seed file through the repositories in one transaction.
// Existing hospitals (by name), identities (by email and role) and quizzes
// (by id) are left untouched, so a file can be applied repeatedly.
type Seeder struct {
	quizzes    domain.QuizRepository
	hospitals  domain.HospitalRepository
	accounts   domain.AccountRepository
	identities domain.IdentityRepository
	tx         domain.TransactionManager
	hash       func(string) (string, error)
}

func NewSeeder(
	quizzes domain.QuizRepository,
	hospitals domain.HospitalRepository,
	accounts domain.AccountRepository,
	identities domain.IdentityRepository,
	tx domain.TransactionManager,
	hash func(string) (string, error),
) *Seeder {
	return &Seeder{
		quizzes:    quizzes,
		hospitals:  hospitals,
		accounts:   accounts,
		identities: identities,
		tx:         tx,
		hash:       hash,
	}
}

// Run applies f.
func (s *Seeder) Run(ctx context.Context, f *File) (Summary, error) {
	var summary Summary
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		summary = Summary{}
		if f.Quiz != nil {
			if err := s.seedQuiz(ctx, f.Quiz, &summary); err != nil {
				return err
			}
		}
		hospitalIDs, err := s.seedHospitals(ctx, f.Hospitals, &summary)
		if err != nil {
			return err
		}
		return s.seedAccounts(ctx, f.Accounts, hospitalIDs, &summary)
	})
	return summary, err
}

func (s *Seeder) seedQuiz(ctx context.Context, q *Quiz, summary *Summary) error {
	log := logger.Get()
	if q.ID != "" {
		existing, err := s.quizzes.GetQuizByID(ctx, q.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("Quiz already seeded, skipping", zap.String("quiz_id", q.ID))
			return nil
		}
	}

	quiz := &domain.Quiz{ID: q.ID, Title: q.Title, Description: q.Description, IsActive: q.Active}
	if strings.TrimSpace(quiz.Title) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz.title")}
	}
	if err := s.quizzes.CreateQuiz(ctx, quiz); err != nil {
		return err
	}
	summary.Quizzes++

	for i, sq := range q.Questions {
		question := &domain.Question{QuizID: quiz.ID, Order: sq.Order, Text: sq.Text, Required: sq.Required == nil || *sq.Required}
		for j, o := range domain.Options {
			question.Options[j] = sq.Options[string(o)]
			question.Scores[j] = sq.Scores[string(o)]
		}
		if err := question.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := s.quizzes.CreateQuestion(ctx, question); err != nil {
			return err
		}
		summary.Questions++
	}

	for i, sr := range q.ResultRanges {
		r := &domain.ResultRange{QuizID: quiz.ID, MinScore: sr.Min, MaxScore: sr.Max, ResultText: sr.Text}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("result range %d: %w", i+1, err)
		}
		if err := s.quizzes.CreateResultRange(ctx, r); err != nil {
			return err
		}
		summary.ResultRanges++
	}
	log.Info("Seeded quiz", zap.String("quiz_id", quiz.ID), zap.Int("questions", len(q.Questions)))
	return nil
}

func (s *Seeder) seedHospitals(ctx context.Context, hospitals []Hospital, summary *Summary) (map[string]string, error) {
	existing, err := s.hospitals.ListHospitals(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(existing)+len(hospitals))
	for _, h := range existing {
		ids[h.Name] = h.ID
	}
	for _, sh := range hospitals {
		if _, ok := ids[sh.Name]; ok {
			continue
		}
		h := &domain.Hospital{Name: strings.TrimSpace(sh.Name), Address: strings.TrimSpace(sh.Address)}
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if err := s.hospitals.CreateHospital(ctx, h); err != nil {
			return nil, err
		}
		ids[h.Name] = h.ID
		summary.Hospitals++
	}
	return ids, nil
}

func (s *Seeder) seedAccounts(ctx context.Context, accounts Accounts, hospitalIDs map[string]string, summary *Summary) error {
	create := func(role domain.Role, a Account, createProfile func() (string, error)) error {
		existing, err := s.identities.FindByEmailAndRole(ctx, a.Email, role)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		if a.Email == "" || a.Password == "" {
			return fmt.Errorf("%s account %q needs an email and a password", role, a.Name)
		}
		hash, err := s.hash(a.Password)
		if err != nil {
			return err
		}
		accountID, err := createProfile()
		if err != nil {
			return err
		}
		if err := s.identities.CreateIdentity(ctx, &domain.Identity{
			Account:      domain.AccountRef{Role: role, ID: accountID},
			DisplayName:  a.Name,
			Email:        a.Email,
			PasswordHash: hash,
		}); err != nil {
			return err
		}
		summary.Accounts++
		return nil
	}

	for _, a := range accounts.Customers {
		a := a
		if err := create(domain.RoleCustomer, a, func() (string, error) {
			c := &domain.Customer{Name: a.Name, Email: a.Email, Phone: a.Phone}
			if err := s.accounts.CreateCustomer(ctx, c); err != nil {
				return "", err
			}
			return c.ID, nil
		}); err != nil {
			return err
		}
	}
	for _, a := range accounts.Therapists {
		a := a
		if err := create(domain.RoleTherapist, a, func() (string, error) {
			t := &domain.Therapist{Name: a.Name, Email: a.Email, Specialization: a.Specialization}
			if a.Hospital != "" {
				id, ok := hospitalIDs[a.Hospital]
				if !ok {
					return "", fmt.Errorf("therapist %q references unknown hospital %q", a.Name, a.Hospital)
				}
				t.HospitalID = id
			}
			if err := s.accounts.CreateTherapist(ctx, t); err != nil {
				return "", err
			}
			return t.ID, nil
		}); err != nil {
			return err
		}
	}
	for _, a := range accounts.Admins {
		a := a
		if err := create(domain.RoleAdmin, a, func() (string, error) {
			ad := &domain.Admin{Name: a.Name, Email: a.Email}
			if err := s.accounts.CreateAdmin(ctx, ad); err != nil {
				return "", err
			}
			return ad.ID, nil
		}); err != nil {
			return err
		}
	}
	return nil
}
