package repository

import (
	"context"
	"sync"
	"time"

	"maideasy/pkg/model"
)

// CompanySettingsRepository holds the single settings record. The id is
// always 1 and Upsert replaces whatever is stored.
type CompanySettingsRepository struct {
	mu       sync.RWMutex
	settings model.CompanySettings
	set      bool
}

func NewCompanySettingsRepository() *CompanySettingsRepository {
	return &CompanySettingsRepository{}
}

func (r *CompanySettingsRepository) Upsert(ctx context.Context, settings model.CompanySettings) model.CompanySettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.ID = 1
	settings.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	r.settings = settings
	r.set = true
	return r.settings
}

func (r *CompanySettingsRepository) Get(ctx context.Context) (model.CompanySettings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings, r.set
}
