package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dlemos/ballotbox/internal/core/counting"
	"github.com/dlemos/ballotbox/internal/core/domain"
	"github.com/dlemos/ballotbox/internal/core/ports"
)

type ElectionHandler struct {
	service ports.ElectionService
}

func NewElectionHandler(service ports.ElectionService) *ElectionHandler {
	return &ElectionHandler{
		service: service,
	}
}

type createElectionRequest struct {
	Candidates []string `json:"candidates"`
}

type electionResponse struct {
	ID         string   `json:"id"`
	Candidates []string `json:"candidates"`
	BallotKind string   `json:"ballot_kind,omitempty"`
	Ballots    int      `json:"ballots"`
}

type castBallotRequest struct {
	Kind    string             `json:"kind"`
	Choice  string             `json:"choice,omitempty"`
	Choices []string           `json:"choices,omitempty"`
	Ranking []string           `json:"ranking,omitempty"`
	Scores  map[string]float64 `json:"scores,omitempty"`
}

type castBallotResponse struct {
	BallotID string `json:"ballot_id"`
}

type resultResponse struct {
	Method  string   `json:"method"`
	Winner  *string  `json:"winner"`
	Winners []string `json:"winners"`
	Tie     bool     `json:"tie"`
}

func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req createElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.service.Create(r.Context(), req.Candidates)
	if err != nil {
		if errors.Is(err, domain.ErrNoCandidates) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toElectionResponse(record))
}

func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidElectionID.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrElectionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toElectionResponse(record))
}

func (h *ElectionHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidElectionID.Error(), http.StatusBadRequest)
		return
	}

	var req castBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ballotID, err := h.service.Cast(r.Context(), ports.CastInput{
		ElectionID: id,
		Kind:       domain.Kind(req.Kind),
		Choice:     req.Choice,
		Choices:    req.Choices,
		Ranking:    req.Ranking,
		Scores:     req.Scores,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrElectionNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrDuplicateVote):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, domain.ErrWrongVoteType):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrCandidateNotInElection),
			errors.Is(err, domain.ErrUnknownBallotKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(castBallotResponse{BallotID: ballotID})
}

func (h *ElectionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidElectionID.Error(), http.StatusBadRequest)
		return
	}

	input := ports.CountInput{
		ElectionID:    id,
		Method:        r.URL.Query().Get("method"),
		StartingAt:    1,
		WinPercentage: 50,
	}
	if raw := r.URL.Query().Get("q"); raw != "" {
		input.Quota, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid q", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("starting_at"); raw != "" {
		input.StartingAt, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid starting_at", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("win_percentage"); raw != "" {
		input.WinPercentage, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid win_percentage", http.StatusBadRequest)
			return
		}
	}

	result, err := h.service.Count(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrElectionNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrUnknownMethod),
			errors.Is(err, counting.ErrInvalidArgument):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrMethodNotApplicable),
			errors.Is(err, counting.ErrEmptyInput):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp := resultResponse{
		Method:  result.Method,
		Winners: result.Winners,
		Tie:     len(result.Winners) > 1,
	}
	if len(resp.Winners) == 0 {
		// "no winner" is a valid outcome, not an error
		resp.Winners = []string{}
	}
	if len(result.Winners) == 1 {
		resp.Winner = &result.Winners[0]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func toElectionResponse(record ports.ElectionRecord) electionResponse {
	candidates := record.Election.Candidates()
	sort.Strings(candidates)

	resp := electionResponse{
		ID:         record.ID.String(),
		Candidates: candidates,
		Ballots:    record.Election.Len(),
	}
	if kind, ok := record.Election.BallotKind(); ok {
		resp.BallotKind = string(kind)
	}
	return resp
}
