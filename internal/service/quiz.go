package service

import (
	"context"

	"smartstudy/internal/domain"
	"smartstudy/internal/dto"
	"smartstudy/internal/logger"
	"smartstudy/internal/prompt"

	"go.uber.org/zap"
)

// QuizService generates quizzes from extracted text and grades answers.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	CheckAnswer(req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
}

type quizService struct {
	completion domain.CompletionService
}

// NewQuizService creates a new instance of quizService
func NewQuizService(completion domain.CompletionService) QuizService {
	return &quizService{completion: completion}
}

// GenerateQuiz builds the quiz prompt, calls the completion provider once
// and normalizes the raw output into a validated Quiz.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	l := logger.Get()
	l.Info("Generating quiz",
		zap.Int("num_questions", req.NumQuestions),
		zap.String("question_type", req.QuestionType),
		zap.String("difficulty", req.Difficulty),
		zap.Int("text_length", len(req.Text)))

	raw, err := s.completion.Complete(ctx, prompt.Quiz(req.Text, req.NumQuestions, req.QuestionType, req.Difficulty))
	if err != nil {
		return nil, err
	}

	quiz, err := domain.ParseQuiz(raw)
	if err != nil {
		l.Error("Failed to normalize quiz from model output",
			zap.Error(err),
			zap.Int("raw_length", len(raw)))
		return nil, err
	}

	l.Info("Quiz generated", zap.Int("questions", len(quiz.Questions)))
	return &dto.GenerateQuizResponse{Success: true, Quiz: quiz}, nil
}

// CheckAnswer grades a single answer against the question the client holds.
// Quizzes live only in the browser's session storage, so the question
// travels with the request.
func (s *quizService) CheckAnswer(req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	return &dto.CheckAnswerResponse{
		Success:     true,
		Correct:     req.Question.Grade(req.UserAnswer),
		Explanation: req.Question.Explanation,
	}, nil
}
