package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"lecturebot/internal/quiz"
	"lecturebot/internal/service/mocks"
)

func TestNewRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bot := mocks.NewMockBotService(ctrl)
	bot.EXPECT().ListCollections(gomock.Any()).Return([]string{"library"}, nil).AnyTimes()
	bot.EXPECT().ActiveCollection().Return("library").AnyTimes()
	bot.EXPECT().NextQuestion().Return(quiz.Question{}, false).AnyTimes()
	bot.EXPECT().Score().Return(0, 0).AnyTimes()
	bot.EXPECT().ListDocuments(gomock.Any()).Return(nil, nil).AnyTimes()
	bot.EXPECT().DeleteCollection(gomock.Any(), "ghost").Return(false, nil).AnyTimes()
	bot.EXPECT().GenerateQuiz(gomock.Any()).Return(0, nil).AnyTimes()

	router := NewRouter(&Deps{Bot: bot})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "list collections", method: http.MethodGet, path: "/api/collections", wantStatus: http.StatusOK},
		{name: "current collection", method: http.MethodGet, path: "/api/collection", wantStatus: http.StatusOK},
		{name: "delete collection", method: http.MethodDelete, path: "/api/collections/ghost", wantStatus: http.StatusOK},
		{name: "quiz generate", method: http.MethodPost, path: "/api/quiz/generate", wantStatus: http.StatusOK},
		{name: "quiz next when empty", method: http.MethodGet, path: "/api/quiz/next", wantStatus: http.StatusNoContent},
		{name: "quiz score", method: http.MethodGet, path: "/api/quiz/score", wantStatus: http.StatusOK},
		{name: "documents", method: http.MethodGet, path: "/api/documents", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/upload", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestNewRouter_DeleteCollectionPassesName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bot := mocks.NewMockBotService(ctrl)
	bot.EXPECT().DeleteCollection(gomock.Any(), "algebra").Return(true, nil)

	router := NewRouter(&Deps{Bot: bot})

	req := httptest.NewRequest(http.MethodDelete, "/api/collections/algebra", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Deleted bool `json:"deleted"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Deleted {
		t.Error("deleted = false, want true")
	}
}

func TestNewRouter_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{Bot: mocks.NewMockBotService(ctrl)})

	req := httptest.NewRequest(http.MethodOptions, "/api/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
