package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"ordenespro/internal/model"
	"ordenespro/internal/storage"
)

type ReporteRepository interface {
	// Find returns the persisted ledger for a date, or a fresh empty
	// record when none was ever saved.
	Find(ctx context.Context, fecha string) (*model.ReporteDiario, error)
	Save(ctx context.Context, r *model.ReporteDiario) error
}

// reporteRepo reads per-date documents on demand; there is no in-memory
// collection because each date is independent.
type reporteRepo struct {
	mu  sync.Mutex
	eng storage.Engine
}

func NewReporteRepository(eng storage.Engine) ReporteRepository {
	return &reporteRepo{eng: eng}
}

func (r *reporteRepo) Find(ctx context.Context, fecha string) (*model.ReporteDiario, error) {
	raw, err := r.eng.Get(ctx, storage.ClaveReporteDiario(fecha))
	if errors.Is(err, storage.ErrNotFound) {
		return &model.ReporteDiario{Fecha: fecha}, nil
	}
	if err != nil {
		return nil, err
	}
	var rep model.ReporteDiario
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, err
	}
	rep.Fecha = fecha
	return &rep, nil
}

func (r *reporteRepo) Save(ctx context.Context, rep *model.ReporteDiario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	return r.eng.Set(ctx, storage.ClaveReporteDiario(rep.Fecha), raw)
}
