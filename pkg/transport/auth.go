package transport

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	model.Profile
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *model.Profile `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	_, err := h.auth.Register(req.Username, req.Password, req.Profile)
	switch errors.Cause(err) {
	case nil:
		h.writeJSON(w, http.StatusCreated, messageResponse{Message: "Inscription réussie !"})
	case service.ErrMissingCredentials:
		h.writeError(w, http.StatusBadRequest, "Tous les champs sont requis")
	case model.ErrUsernameTaken:
		h.writeError(w, http.StatusBadRequest, "Nom d'utilisateur déjà pris")
	default:
		h.internalError(w, err)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	switch errors.Cause(err) {
	case nil:
		h.writeJSON(w, http.StatusOK, loginResponse{
			Message: "Connexion réussie !",
			Token:   token,
			User:    user.Profile(),
		})
	case service.ErrMissingCredentials:
		h.writeError(w, http.StatusBadRequest, "Tous les champs sont requis")
	case model.ErrInvalidCredentials:
		h.writeError(w, http.StatusUnauthorized, "Identifiants incorrects")
	default:
		h.internalError(w, err)
	}
}
