package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExtractedClaim stores a single claim pulled out of submitted text.
type ExtractedClaim struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	RunID     string    `gorm:"column:run_id;size:36;index:idx_claims_run"`
	Position  uint32    `gorm:"column:position"`
	ClaimText string    `gorm:"column:claim_text;type:text"`
	CreatedAt time.Time `gorm:"index:idx_claims_created"`
}

// TableName implements gorm's tabler interface.
func (ExtractedClaim) TableName() string {
	return "extracted_claims"
}

// VerificationRun stores the full summary payload of one verification batch.
type VerificationRun struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	RunID               string    `gorm:"column:run_id;size:36;uniqueIndex:idx_runs_run"`
	TotalClaims         uint32    `gorm:"column:total_claims"`
	TotalSourcesChecked uint32    `gorm:"column:total_sources_checked"`
	TrustScore          float64   `gorm:"column:trust_score"`
	Payload             string    `gorm:"column:payload;type:mediumtext"` // JSON summary
	CreatedAt           time.Time `gorm:"index:idx_runs_created"`
}

// TableName implements gorm's tabler interface.
func (VerificationRun) TableName() string {
	return "verification_runs"
}

// VerificationStore provides persistence helpers for extracted claims and
// verification summaries.
type VerificationStore struct {
	db *gorm.DB
}

// NewVerificationStore returns a new verification store instance.
func NewVerificationStore(db *gorm.DB) *VerificationStore {
	return &VerificationStore{db: db}
}

// SaveClaims persists an extracted claim list and returns its run ID.
func (vs *VerificationStore) SaveClaims(claims []string) (string, error) {
	if vs == nil || vs.db == nil {
		return "", fmt.Errorf("verification store not initialized")
	}

	runID := uuid.NewString()
	rows := make([]ExtractedClaim, 0, len(claims))
	for i, text := range claims {
		rows = append(rows, ExtractedClaim{
			RunID:     runID,
			Position:  uint32(i),
			ClaimText: text,
			CreatedAt: time.Now(),
		})
	}
	if len(rows) == 0 {
		return runID, nil
	}

	return runID, vs.db.Create(&rows).Error
}

// LatestClaims returns the most recently extracted claim list in input order.
func (vs *VerificationStore) LatestClaims() ([]string, error) {
	if vs == nil || vs.db == nil {
		return nil, fmt.Errorf("verification store not initialized")
	}

	var latest ExtractedClaim
	err := vs.db.Order("created_at DESC").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []ExtractedClaim
	err = vs.db.Where("run_id = ?", latest.RunID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	claims := make([]string, 0, len(rows))
	for _, r := range rows {
		claims = append(claims, r.ClaimText)
	}
	return claims, nil
}

// SaveRun persists a verification summary and returns its run ID.
func (vs *VerificationStore) SaveRun(totalClaims, totalSources uint32, trustScore float64, summary any) (string, error) {
	if vs == nil || vs.db == nil {
		return "", fmt.Errorf("verification store not initialized")
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return "", err
	}

	run := VerificationRun{
		RunID:               uuid.NewString(),
		TotalClaims:         totalClaims,
		TotalSourcesChecked: totalSources,
		TrustScore:          trustScore,
		Payload:             string(payload),
		CreatedAt:           time.Now(),
	}

	return run.RunID, vs.db.Create(&run).Error
}

// LatestRun returns the most recent verification summary as raw JSON, or nil
// when no run has been stored yet.
func (vs *VerificationStore) LatestRun() ([]byte, error) {
	if vs == nil || vs.db == nil {
		return nil, fmt.Errorf("verification store not initialized")
	}

	var run VerificationRun
	err := vs.db.Order("created_at DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(run.Payload), nil
}
