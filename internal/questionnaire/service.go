// Package questionnaire: lokasyon başına doldurulan sayım anketi.
// Soru tanımları admin tarafından toplu değiştirilir; cevaplar
// (soru, lokasyon) çifti başına tek kayıt olarak upsert edilir.
package questionnaire

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"sayim-backend/internal/models"
	"sayim-backend/internal/storage"
)

var ErrQuestionNotFound = errors.New("soru bulunamadı")

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Questions() ([]models.Question, error) {
	return s.store.Questions()
}

// ReplaceQuestions: soru seti her zaman komple değiştirilir (katalog
// importuyla aynı desen). Id'si olmayan sorulara yeni id atanır.
func (s *Service) ReplaceQuestions(questions []models.Question) error {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		if questions[i].Type == "" {
			questions[i].Type = models.QuestionText
		}
	}
	return s.store.SetQuestions(questions)
}

// SubmitAnswer: (soru, lokasyon) başına tek cevap; ikinci gönderim
// üzerine yazar. AnsweredOn her dokunuşta damgalanır.
func (s *Service) SubmitAnswer(answer models.QuestionnaireAnswer) (models.QuestionnaireAnswer, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return models.QuestionnaireAnswer{}, err
	}
	known := false
	for _, q := range questions {
		if q.ID == answer.QuestionID {
			known = true
			break
		}
	}
	if !known {
		return models.QuestionnaireAnswer{}, ErrQuestionNotFound
	}

	answers, err := s.store.QuestionnaireAnswers()
	if err != nil {
		return models.QuestionnaireAnswer{}, err
	}

	answer.AnsweredOn = time.Now()
	replaced := false
	for i := range answers {
		if answers[i].QuestionID == answer.QuestionID && answers[i].LocationID == answer.LocationID {
			answer.ID = answers[i].ID
			answers[i] = answer
			replaced = true
			break
		}
	}
	if !replaced {
		answers = append(answers, answer)
	}

	if err := s.store.SetQuestionnaireAnswers(answers); err != nil {
		return models.QuestionnaireAnswer{}, err
	}
	return answer, nil
}

func (s *Service) Answers(locationID string) ([]models.QuestionnaireAnswer, error) {
	answers, err := s.store.QuestionnaireAnswers()
	if err != nil {
		return nil, err
	}
	if locationID == "" {
		return answers, nil
	}
	out := make([]models.QuestionnaireAnswer, 0, len(answers))
	for _, a := range answers {
		if a.LocationID == locationID {
			out = append(out, a)
		}
	}
	return out, nil
}
