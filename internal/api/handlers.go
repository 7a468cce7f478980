package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/davidahmann/edsign/internal/auth"
	"github.com/davidahmann/edsign/internal/crypto"
	"github.com/davidahmann/edsign/pkg/types"
)

const maxBodyBytes = 8 << 20

type Handler struct {
	Auth    auth.Authenticator
	Service *crypto.SigningService
	Log     *logrus.Entry
}

func (h *Handler) Keypair(w http.ResponseWriter, r *http.Request) {
	var req types.KeypairRequest
	if !h.decode(w, r, &req) {
		return
	}

	seed, err := types.DecodeValue(req.Seed)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	kp, err := h.Service.DeriveKeypairValue(seed)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types.KeypairResponse{
		PublicKey:  kp.PublicKey.Bytes(),
		PrivateKey: kp.PrivateKey.Bytes(),
	})
}

func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	var req types.SignRequest
	if !h.decode(w, r, &req) {
		return
	}

	message, err := types.DecodeValue(req.Message)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	privateKey, err := types.DecodeValue(req.PrivateKey)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	sig, err := h.Service.SignValue(message, privateKey)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types.SignResponse{Signature: sig.Bytes()})
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req types.VerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	values := make([]any, 3)
	for i, raw := range []json.RawMessage{req.Message, req.Signature, req.PublicKey} {
		v, err := types.DecodeValue(raw)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		values[i] = v
	}

	ok, err := h.Service.VerifyValue(values[0], values[1], values[2])
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types.VerifyResponse{Valid: ok})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if h.Auth != nil {
		if err := h.Auth.Authenticate(r); err != nil {
			writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
			return false
		}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(into); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, types.ErrorResponse{Error: "request body too large", RequestID: RequestID(r.Context())})
			return false
		}
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid json", RequestID: RequestID(r.Context())})
		return false
	}
	return true
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.logger(r).WithError(err).Info("rejected request")
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func (h *Handler) logger(r *http.Request) *logrus.Entry {
	log := h.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return log.WithField("request_id", RequestID(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
