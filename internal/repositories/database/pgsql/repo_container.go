package pgsql

import (
	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Provider bundles the Postgres-backed repositories behind the same interface
// the in-memory provider implements, so main can pick either at startup.
type Provider struct {
	pool *pgxpool.Pool
}

func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{pool: pool}
}

func (p *Provider) Staff() ports.StaffRepository         { return newStaffRepository(p.pool) }
func (p *Provider) Category() ports.CategoryRepository   { return newCategoryRepository(p.pool) }
func (p *Provider) Event() ports.EventRepository         { return newEventRepository(p.pool) }
func (p *Provider) Booking() ports.BookingRepository     { return newBookingRepository(p.pool) }
func (p *Provider) User() ports.UserRepository           { return newUserRepository(p.pool) }
func (p *Provider) Reporting() ports.ReportingRepository { return newReportingRepository(p.pool) }
