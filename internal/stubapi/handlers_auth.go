package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/avc/stellar-burger-store/internal/utils/jwt"
	"go.uber.org/zap"
)

type tokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusForbidden, "Email, password and name are required fields")
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		writeError(w, http.StatusForbidden, "User already exists")
		return
	}
	s.users[req.Email] = &userRecord{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	s.mu.Unlock()

	s.issueTokens(w, req.Email, req.Name)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	user, exists := s.users[creds.Email]
	s.mu.Unlock()

	if !exists || s.hasher.Check(user.PasswordHash, creds.Password) != nil {
		writeError(w, http.StatusUnauthorized, "email or password are incorrect")
		return
	}

	s.issueTokens(w, user.Email, user.Name)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, err := s.jwtManager.Validate(req.Token, jwt.KindRefresh)
	if err != nil {
		writeError(w, http.StatusForbidden, "Token is invalid")
		return
	}

	access, refresh, err := s.jwtManager.GeneratePair(email)
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, domain.RefreshResponse{
		Success:      true,
		AccessToken:  "Bearer " + access,
		RefreshToken: refresh,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := s.jwtManager.Validate(req.Token, jwt.KindRefresh); err != nil {
		writeError(w, http.StatusForbidden, "Token is invalid")
		return
	}

	writeJSON(w, http.StatusOK, domain.LogoutResponse{
		Success: true,
		Message: "Successful logout",
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email, ok := requestEmail(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You should be authorised")
		return
	}

	s.mu.Lock()
	user, exists := s.users[email]
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusForbidden, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, domain.UserResponse{
		Success: true,
		User:    domain.User{Name: user.Name, Email: user.Email},
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	email, ok := requestEmail(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You should be authorised")
		return
	}

	var patch domain.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		writeError(w, http.StatusForbidden, "User not found")
		return
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			s.logger.Error("failed to hash password", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		user.PasswordHash = hash
	}
	if patch.Email != nil && *patch.Email != email {
		// Смена email переносит запись под новый ключ
		if _, taken := s.users[*patch.Email]; taken {
			writeError(w, http.StatusForbidden, "User already exists")
			return
		}
		delete(s.users, email)
		user.Email = *patch.Email
		s.users[user.Email] = user
	}

	writeJSON(w, http.StatusOK, domain.UserResponse{
		Success: true,
		User:    domain.User{Name: user.Name, Email: user.Email},
	})
}

// issueTokens выпускает пару токенов и отвечает в формате auth эндпоинтов
func (s *Server) issueTokens(w http.ResponseWriter, email, name string) {
	access, refresh, err := s.jwtManager.GeneratePair(email)
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, domain.AuthResponse{
		Success:      true,
		AccessToken:  "Bearer " + access,
		RefreshToken: refresh,
		User:         domain.User{Name: name, Email: email},
	})
}
