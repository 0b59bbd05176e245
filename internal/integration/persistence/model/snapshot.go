// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Storage slot names. The primary slot holds the live snapshot, the backup
// slot holds the single-slot daily copy.
const (
	SlotPrimary = "primary"
	SlotBackup  = "backup"
)

const dateLayout = "2006-01-02"

// ErrInvalidPayload is returned when a persisted payload fails schema
// validation. The repository wraps it into a coded corrupt-state error.
var ErrInvalidPayload = errors.New("invalid snapshot payload")

// SnapshotModel represents the snapshots table: one JSON payload per slot.
type SnapshotModel struct {
	Slot        string    `gorm:"type:varchar(20);primaryKey"`
	Version     int       `gorm:"not null"`
	LastUpdated time.Time `gorm:"not null"`
	LastBackup  time.Time
	Payload     []byte `gorm:"not null"`
}

// TableName returns the table name for the SnapshotModel.
func (SnapshotModel) TableName() string {
	return "snapshots"
}

// snapshotPayload is the JSON shape persisted in a slot. It mirrors the
// external snapshot contract: version, timestamps, and the full state tree.
type snapshotPayload struct {
	Version      int                 `json:"version"`
	LastUpdated  time.Time           `json:"lastUpdated"`
	LastBackup   time.Time           `json:"lastBackup"`
	Transactions []transactionRecord `json:"transactions"`
	Goals        []goalRecord        `json:"goals"`
	Profile      profileRecord       `json:"profile"`
	Settings     map[string]any      `json:"settings"`
}

type goalRecord struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Kind         string    `json:"kind"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type transactionRecord struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type profileRecord struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Email       string         `json:"email,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// SnapshotFromEntity creates a SnapshotModel for the given slot from a domain
// Snapshot entity.
func SnapshotFromEntity(slot string, snapshot *entity.Snapshot) (*SnapshotModel, error) {
	payload := snapshotPayload{
		Version:      snapshot.Version,
		LastUpdated:  snapshot.LastUpdated,
		LastBackup:   snapshot.LastBackup,
		Transactions: make([]transactionRecord, 0, len(snapshot.Transactions)),
		Goals:        make([]goalRecord, 0, len(snapshot.Goals)),
		Profile: profileRecord{
			ID:          snapshot.Profile.ID,
			Name:        snapshot.Profile.Name,
			Email:       snapshot.Profile.Email,
			Preferences: snapshot.Profile.Preferences,
		},
		Settings: snapshot.Settings,
	}

	for _, t := range snapshot.Transactions {
		payload.Transactions = append(payload.Transactions, transactionRecord{
			ID:          t.ID.String(),
			Date:        t.Date.Format(dateLayout),
			Description: t.Description,
			Amount:      t.Amount.InexactFloat64(),
			Type:        string(t.Type),
			Category:    t.Category,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}

	for _, g := range snapshot.Goals {
		payload.Goals = append(payload.Goals, goalRecord{
			ID:           g.ID.String(),
			Type:         string(g.Type),
			Kind:         string(g.Kind),
			Category:     g.Category,
			Title:        g.Title,
			Description:  g.Description,
			TargetValue:  g.TargetValue,
			CurrentValue: g.CurrentValue,
			StartDate:    g.StartDate.Format(dateLayout),
			EndDate:      g.EndDate.Format(dateLayout),
			Status:       string(g.Status),
			CreatedAt:    g.CreatedAt,
			UpdatedAt:    g.UpdatedAt,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}

	return &SnapshotModel{
		Slot:        slot,
		Version:     snapshot.Version,
		LastUpdated: snapshot.LastUpdated,
		LastBackup:  snapshot.LastBackup,
		Payload:     raw,
	}, nil
}

// ToEntity decodes and validates the payload into a domain Snapshot entity.
// Any schema violation yields ErrInvalidPayload; the payload is never coerced.
func (m *SnapshotModel) ToEntity() (*entity.Snapshot, error) {
	var payload snapshotPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if payload.Version < 1 {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidPayload, payload.Version)
	}
	if payload.Transactions == nil || payload.Goals == nil {
		return nil, fmt.Errorf("%w: missing state collections", ErrInvalidPayload)
	}

	snapshot := &entity.Snapshot{
		Version:      payload.Version,
		LastUpdated:  payload.LastUpdated,
		LastBackup:   payload.LastBackup,
		Transactions: make([]*entity.Transaction, 0, len(payload.Transactions)),
		Goals:        make([]*entity.Goal, 0, len(payload.Goals)),
		Profile: entity.Profile{
			ID:          payload.Profile.ID,
			Name:        payload.Profile.Name,
			Email:       payload.Profile.Email,
			Preferences: payload.Profile.Preferences,
		},
		Settings: payload.Settings,
	}
	if snapshot.Profile.Preferences == nil {
		snapshot.Profile.Preferences = map[string]any{}
	}
	if snapshot.Settings == nil {
		snapshot.Settings = map[string]any{}
	}

	for _, r := range payload.Transactions {
		transaction, err := r.toEntity()
		if err != nil {
			return nil, err
		}
		snapshot.Transactions = append(snapshot.Transactions, transaction)
	}

	for _, r := range payload.Goals {
		goal, err := r.toEntity()
		if err != nil {
			return nil, err
		}
		snapshot.Goals = append(snapshot.Goals, goal)
	}

	return snapshot, nil
}

func (r transactionRecord) toEntity() (*entity.Transaction, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction id %q", ErrInvalidPayload, r.ID)
	}

	date, err := time.ParseInLocation(dateLayout, r.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date %q", ErrInvalidPayload, r.Date)
	}

	transactionType := entity.TransactionType(r.Type)
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return nil, fmt.Errorf("%w: transaction type %q", ErrInvalidPayload, r.Type)
	}

	return &entity.Transaction{
		ID:          id,
		Date:        date,
		Description: r.Description,
		Amount:      decimal.NewFromFloat(r.Amount),
		Type:        transactionType,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func (r goalRecord) toEntity() (*entity.Goal, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: goal id %q", ErrInvalidPayload, r.ID)
	}

	startDate, err := time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: goal start date %q", ErrInvalidPayload, r.StartDate)
	}

	endDate, err := time.ParseInLocation(dateLayout, r.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: goal end date %q", ErrInvalidPayload, r.EndDate)
	}

	if r.TargetValue <= 0 {
		return nil, fmt.Errorf("%w: goal target value %v", ErrInvalidPayload, r.TargetValue)
	}

	return &entity.Goal{
		ID:           id,
		Type:         entity.GoalType(r.Type),
		Kind:         entity.GoalKind(r.Kind),
		Category:     r.Category,
		Title:        r.Title,
		Description:  r.Description,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       entity.GoalStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
