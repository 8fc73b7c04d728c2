package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service"
)

// stubIntroService records the theme and phase it was called with.
type stubIntroService struct {
	text string
	err  error

	gotTema string
	gotFase string
}

func (s *stubIntroService) Generate(_ context.Context, tema, fase string) (string, error) {
	s.gotTema = tema
	s.gotFase = fase
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestIntroductionHandler_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns the introduction text", func(t *testing.T) {
		t.Parallel()

		svc := &stubIntroService{text: "Vamos aprender os animais!"}
		handler := NewIntroductionHandler(svc)

		body := bytes.NewBufferString(`{"tema":"animais","fase":"palavras"}`)
		req := httptest.NewRequest(http.MethodPost, "/generate-introduction", body)
		rr := httptest.NewRecorder()

		handler.Generate(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp IntroductionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Vamos aprender os animais!", resp.Text)
		assert.Equal(t, "animais", svc.gotTema)
		assert.Equal(t, "palavras", svc.gotFase)
	})

	t.Run("unknown phase responds 400", func(t *testing.T) {
		t.Parallel()

		handler := NewIntroductionHandler(&stubIntroService{
			err: domain.NewValidationError(
				"fase",
				"must be one of palavras, frases or jogos",
				service.ErrUnknownPhase,
			),
		})

		body := bytes.NewBufferString(`{"tema":"animais","fase":"desconhecida"}`)
		req := httptest.NewRequest(http.MethodPost, "/generate-introduction", body)
		rr := httptest.NewRecorder()

		handler.Generate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing fields respond 400 before the service is called", func(t *testing.T) {
		t.Parallel()

		svc := &stubIntroService{text: "never"}
		handler := NewIntroductionHandler(svc)

		body := bytes.NewBufferString(`{"tema":"animais"}`)
		req := httptest.NewRequest(http.MethodPost, "/generate-introduction", body)
		rr := httptest.NewRecorder()

		handler.Generate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.gotFase)
	})
}
