package handlers

import (
	"context"
	"time"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

// Flexible service stubs shared by the handler tests. Each method delegates
// to its func field when set and falls back to a benign default otherwise.

type stubCatalogSvc struct {
	createType     func(context.Context, string, string) (*domain.DredgerType, error)
	listTypes      func(context.Context) ([]domain.DredgerType, error)
	createPart     func(context.Context, services.SparePartInput) (*domain.SparePart, error)
	listParts      func(context.Context) ([]domain.SparePart, error)
	getPart        func(context.Context, string) (*domain.SparePart, error)
	updatePart     func(context.Context, string, services.SparePartInput) (*domain.SparePart, error)
	addTypePart    func(context.Context, string, string) (*domain.DredgerTypePart, error)
	listTypeParts  func(context.Context, string) ([]domain.SparePart, error)
	removeTypePart func(context.Context, string, string) error
}

func (s stubCatalogSvc) CreateType(ctx context.Context, name, code string) (*domain.DredgerType, error) {
	if s.createType != nil {
		return s.createType(ctx, name, code)
	}
	return &domain.DredgerType{ID: "t1", Name: name, Code: code}, nil
}

func (s stubCatalogSvc) ListTypes(ctx context.Context) ([]domain.DredgerType, error) {
	if s.listTypes != nil {
		return s.listTypes(ctx)
	}
	return nil, nil
}

func (s stubCatalogSvc) CreatePart(ctx context.Context, in services.SparePartInput) (*domain.SparePart, error) {
	if s.createPart != nil {
		return s.createPart(ctx, in)
	}
	return &domain.SparePart{ID: "p1", Code: in.Code, Name: in.Name}, nil
}

func (s stubCatalogSvc) ListParts(ctx context.Context) ([]domain.SparePart, error) {
	if s.listParts != nil {
		return s.listParts(ctx)
	}
	return nil, nil
}

func (s stubCatalogSvc) GetPart(ctx context.Context, id string) (*domain.SparePart, error) {
	if s.getPart != nil {
		return s.getPart(ctx, id)
	}
	return &domain.SparePart{ID: id}, nil
}

func (s stubCatalogSvc) UpdatePart(ctx context.Context, id string, in services.SparePartInput) (*domain.SparePart, error) {
	if s.updatePart != nil {
		return s.updatePart(ctx, id, in)
	}
	return &domain.SparePart{ID: id, Code: in.Code, Name: in.Name}, nil
}

func (s stubCatalogSvc) AddTypePart(ctx context.Context, typeID, partID string) (*domain.DredgerTypePart, error) {
	if s.addTypePart != nil {
		return s.addTypePart(ctx, typeID, partID)
	}
	return &domain.DredgerTypePart{ID: "tp1", DredgerTypeID: typeID, SparePartID: partID}, nil
}

func (s stubCatalogSvc) ListTypeParts(ctx context.Context, typeID string) ([]domain.SparePart, error) {
	if s.listTypeParts != nil {
		return s.listTypeParts(ctx, typeID)
	}
	return nil, nil
}

func (s stubCatalogSvc) RemoveTypePart(ctx context.Context, typeID, partID string) error {
	if s.removeTypePart != nil {
		return s.removeTypePart(ctx, typeID, partID)
	}
	return nil
}

type stubFleetSvc struct {
	create     func(context.Context, string, string) (*domain.Dredger, error)
	list       func(context.Context) ([]domain.Dredger, error)
	get        func(context.Context, string) (*domain.Dredger, error)
	update     func(context.Context, string, string, string) (*domain.Dredger, error)
	components func(context.Context, string) ([]domain.Component, error)
	template   func(context.Context, string) ([]services.TemplateSlot, error)
}

func (s stubFleetSvc) Create(ctx context.Context, invNumber, typeID string) (*domain.Dredger, error) {
	if s.create != nil {
		return s.create(ctx, invNumber, typeID)
	}
	return &domain.Dredger{ID: "d1", InvNumber: invNumber, DredgerTypeID: typeID}, nil
}

func (s stubFleetSvc) List(ctx context.Context) ([]domain.Dredger, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubFleetSvc) Get(ctx context.Context, id string) (*domain.Dredger, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Dredger{ID: id}, nil
}

func (s stubFleetSvc) Update(ctx context.Context, id, invNumber, typeID string) (*domain.Dredger, error) {
	if s.update != nil {
		return s.update(ctx, id, invNumber, typeID)
	}
	return &domain.Dredger{ID: id, InvNumber: invNumber, DredgerTypeID: typeID}, nil
}

func (s stubFleetSvc) Components(ctx context.Context, dredgerID string) ([]domain.Component, error) {
	if s.components != nil {
		return s.components(ctx, dredgerID)
	}
	return nil, nil
}

func (s stubFleetSvc) Template(ctx context.Context, dredgerID string) ([]services.TemplateSlot, error) {
	if s.template != nil {
		return s.template(ctx, dredgerID)
	}
	return nil, nil
}

type stubComponentSvc struct {
	create      func(context.Context, string, string) (*domain.Component, error)
	get         func(context.Context, string) (*domain.Component, error)
	list        func(context.Context) ([]domain.Component, error)
	updateHours func(context.Context, string, uint, *string) (*domain.Component, error)
	available   func(context.Context, []string) ([]domain.Component, error)
	history     func(context.Context, string) ([]repo.HistoryRow, error)
}

func (s stubComponentSvc) Create(ctx context.Context, partID, serialNumber string) (*domain.Component, error) {
	if s.create != nil {
		return s.create(ctx, partID, serialNumber)
	}
	return &domain.Component{ID: "c1", SparePartID: partID, SerialNumber: serialNumber}, nil
}

func (s stubComponentSvc) Get(ctx context.Context, id string) (*domain.Component, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Component{ID: id}, nil
}

func (s stubComponentSvc) List(ctx context.Context) ([]domain.Component, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubComponentSvc) UpdateHours(ctx context.Context, id string, newHours uint, repairID *string) (*domain.Component, error) {
	if s.updateHours != nil {
		return s.updateHours(ctx, id, newHours, repairID)
	}
	return &domain.Component{ID: id, TotalHours: newHours}, nil
}

func (s stubComponentSvc) Available(ctx context.Context, partIDs []string) ([]domain.Component, error) {
	if s.available != nil {
		return s.available(ctx, partIDs)
	}
	return nil, nil
}

func (s stubComponentSvc) History(ctx context.Context, id string) ([]repo.HistoryRow, error) {
	if s.history != nil {
		return s.history(ctx, id)
	}
	return nil, nil
}

type stubRepairSvc struct {
	create   func(context.Context, services.CreateRepairInput) (*domain.Repair, error)
	get      func(context.Context, string) (*domain.Repair, error)
	listPage func(context.Context, repo.RepairListFilter, int, int) ([]domain.Repair, int64, error)
	update   func(context.Context, string, services.UpdateRepairInput) (*domain.Repair, error)
	delete   func(context.Context, string) error
}

func (s stubRepairSvc) Create(ctx context.Context, in services.CreateRepairInput) (*domain.Repair, error) {
	if s.create != nil {
		return s.create(ctx, in)
	}
	return &domain.Repair{ID: "r1", DredgerID: in.DredgerID, StartDate: in.StartDate}, nil
}

func (s stubRepairSvc) Get(ctx context.Context, id string) (*domain.Repair, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Repair{ID: id}, nil
}

func (s stubRepairSvc) ListPage(ctx context.Context, f repo.RepairListFilter, offset, limit int) ([]domain.Repair, int64, error) {
	if s.listPage != nil {
		return s.listPage(ctx, f, offset, limit)
	}
	return nil, 0, nil
}

func (s stubRepairSvc) Update(ctx context.Context, id string, in services.UpdateRepairInput) (*domain.Repair, error) {
	if s.update != nil {
		return s.update(ctx, id, in)
	}
	return &domain.Repair{ID: id, StartDate: in.StartDate}, nil
}

func (s stubRepairSvc) Delete(ctx context.Context, id string) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

type stubDeviationSvc struct {
	create   func(context.Context, repo.NewDeviation, domain.Actor) (*domain.Deviation, error)
	get      func(context.Context, string) (*domain.Deviation, error)
	listPage func(context.Context, time.Time, time.Time, int, int) ([]domain.Deviation, int64, error)
}

func (s stubDeviationSvc) Create(ctx context.Context, in repo.NewDeviation, actor domain.Actor) (*domain.Deviation, error) {
	if s.create != nil {
		return s.create(ctx, in, actor)
	}
	return &domain.Deviation{ID: "v1", DredgerID: in.DredgerID, CreatedBy: actor.ID}, nil
}

func (s stubDeviationSvc) Get(ctx context.Context, id string) (*domain.Deviation, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Deviation{ID: id}, nil
}

func (s stubDeviationSvc) ListPage(ctx context.Context, after, before time.Time, offset, limit int) ([]domain.Deviation, int64, error) {
	if s.listPage != nil {
		return s.listPage(ctx, after, before, offset, limit)
	}
	return nil, 0, nil
}

type stubReportSvc struct {
	dashboard     func(context.Context, time.Time, time.Time) (*services.Dashboard, error)
	repairRows    func(context.Context) ([]services.Column, []repo.RepairExportRow, error)
	deviationRows func(context.Context) ([]services.Column, []repo.DeviationExportRow, error)
}

func (s stubReportSvc) Dashboard(ctx context.Context, after, before time.Time) (*services.Dashboard, error) {
	if s.dashboard != nil {
		return s.dashboard(ctx, after, before)
	}
	return &services.Dashboard{}, nil
}

func (s stubReportSvc) RepairRows(ctx context.Context) ([]services.Column, []repo.RepairExportRow, error) {
	if s.repairRows != nil {
		return s.repairRows(ctx)
	}
	return nil, nil, nil
}

func (s stubReportSvc) DeviationRows(ctx context.Context) ([]services.Column, []repo.DeviationExportRow, error) {
	if s.deviationRows != nil {
		return s.deviationRows(ctx)
	}
	return nil, nil, nil
}
