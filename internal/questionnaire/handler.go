package questionnaire

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sayim-backend/internal/activity"
	"sayim-backend/internal/auth"
	"sayim-backend/internal/models"
)

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	LocationID string `json:"locationId"`
	Answer     string `json:"answer"`
}

func ListQuestionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questions, err := svc.Questions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sorular listelenemedi")
		}
		return c.JSON(questions)
	}
}

func ReplaceQuestionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var questions []models.Question
		if err := c.BodyParser(&questions); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz soru listesi")
		}

		for _, q := range questions {
			if q.Text == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Soru metni boş olamaz")
			}
		}

		if err := svc.ReplaceQuestions(questions); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sorular kaydedilemedi")
		}
		return c.JSON(fiber.Map{"count": len(questions)})
	}
}

func SubmitAnswerHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AnswerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.QuestionID == "" || body.LocationID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Soru ve lokasyon zorunlu")
		}

		claims := auth.Claims(c)
		if !auth.CanAccessLocation(claims, body.LocationID) {
			return fiber.NewError(fiber.StatusForbidden, "Bu lokasyona erişim yetkin yok")
		}

		answer, err := svc.SubmitAnswer(models.QuestionnaireAnswer{
			QuestionID: body.QuestionID,
			LocationID: body.LocationID,
			Answer:     body.Answer,
			AnsweredBy: claims.Name,
		})
		if err != nil {
			if errors.Is(err, ErrQuestionNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Cevap kaydedilemedi")
		}

		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityAnswer,
			EntityType:  "questionnaire_answer",
			Description: fmt.Sprintf("Anket cevabı kaydedildi (lokasyon %s)", body.LocationID),
		})

		return c.JSON(answer)
	}
}

func ListAnswersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		answers, err := svc.Answers(c.Query("locationId"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Cevaplar listelenemedi")
		}
		return c.JSON(answers)
	}
}
