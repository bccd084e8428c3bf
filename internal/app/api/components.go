package api

import (
	"gorm.io/gorm"

	bookstorehandler "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/http/handler"
	bookstorememory "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/memory"
	bookstoreobs "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/observability"
	bookstorepostgres "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/persistence/postgres"
	bookstoreapp "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/application"
	bookstoreports "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	inheritancehandler "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/http/handler"
	inheritancememory "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/memory"
	inheritanceobs "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/observability"
	inheritancepostgres "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/persistence/postgres"
	inheritanceapp "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/application"
	inheritanceports "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	ordershandler "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/http/handler"
	ordersmemory "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	wordpresshandler "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/http/handler"
	wordpressmemory "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/memory"
	wordpressobs "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/observability"
	wordpresspostgres "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/persistence/postgres"
	wordpressapp "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/application"
	wordpressports "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
	platformobservability "github.com/Apurer/go-persistence-examples/internal/platform/observability"
)

// Repositories groups one repository per aggregate. Memory and postgres variants are interchangeable.
type Repositories struct {
	Authors         bookstoreports.AuthorRepository
	Books           bookstoreports.BookRepository
	Products        ordersports.ProductRepository
	Customers       ordersports.CustomerRepository
	OrderHeaders    ordersports.OrderHeaderRepository
	Terms           wordpressports.TermRepository
	TermMetas       wordpressports.TermMetaRepository
	ElectricGuitars inheritanceports.ElectricGuitarRepository
}

// NewRepositories returns GORM repositories on db, or in-memory ones when db is nil.
func NewRepositories(db *gorm.DB) Repositories {
	if db == nil {
		books := bookstorememory.NewStore()
		orders := ordersmemory.NewStore()
		wordpress := wordpressmemory.NewStore()
		return Repositories{
			Authors:         books.Authors(),
			Books:           books.Books(),
			Products:        orders.Products(),
			Customers:       orders.Customers(),
			OrderHeaders:    orders.OrderHeaders(),
			Terms:           wordpress.Terms(),
			TermMetas:       wordpress.TermMetas(),
			ElectricGuitars: inheritancememory.NewRepository(),
		}
	}
	return Repositories{
		Authors:         bookstorepostgres.NewAuthorRepository(db),
		Books:           bookstorepostgres.NewBookRepository(db),
		Products:        orderspostgres.NewProductRepository(db),
		Customers:       orderspostgres.NewCustomerRepository(db),
		OrderHeaders:    orderspostgres.NewOrderHeaderRepository(db),
		Terms:           wordpresspostgres.NewTermRepository(db),
		TermMetas:       wordpresspostgres.NewTermMetaRepository(db),
		ElectricGuitars: inheritancepostgres.NewRepository(db),
	}
}

// DAOs are the instrumented data access objects served over HTTP.
type DAOs struct {
	Authors         bookstoreports.AuthorDAO
	Books           bookstoreports.BookDAO
	Products        ordersports.ProductDAO
	Customers       ordersports.CustomerDAO
	OrderHeaders    ordersports.OrderHeaderDAO
	TermMetas       wordpressports.TermMetaDAO
	ElectricGuitars inheritanceports.ElectricGuitarRepository
}

// NewDAOs wraps the core DAOs with tracing, logging and metrics decorators.
func NewDAOs(repos Repositories, instruments *platformobservability.Instruments) DAOs {
	var (
		bookstoreOpts   []bookstoreobs.Option
		ordersOpts      []ordersobs.Option
		wordpressOpts   []wordpressobs.Option
		inheritanceOpts []inheritanceobs.Option
	)
	if instruments != nil {
		bookstoreOpts = []bookstoreobs.Option{
			bookstoreobs.WithLogger(instruments.Logger),
			bookstoreobs.WithTracer(instruments.Tracer("internal.bookstore.application")),
			bookstoreobs.WithMeter(instruments.Meter("internal.bookstore.application")),
		}
		ordersOpts = []ordersobs.Option{
			ordersobs.WithLogger(instruments.Logger),
			ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
			ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
		}
		wordpressOpts = []wordpressobs.Option{
			wordpressobs.WithLogger(instruments.Logger),
			wordpressobs.WithTracer(instruments.Tracer("internal.wordpress.application")),
			wordpressobs.WithMeter(instruments.Meter("internal.wordpress.application")),
		}
		inheritanceOpts = []inheritanceobs.Option{
			inheritanceobs.WithLogger(instruments.Logger),
			inheritanceobs.WithTracer(instruments.Tracer("internal.inheritance.application")),
			inheritanceobs.WithMeter(instruments.Meter("internal.inheritance.application")),
		}
	}
	return DAOs{
		Authors:         bookstoreobs.NewAuthorDAO(bookstoreapp.NewAuthorDAO(repos.Authors), bookstoreOpts...),
		Books:           bookstoreobs.NewBookDAO(bookstoreapp.NewBookDAO(repos.Books), bookstoreOpts...),
		Products:        ordersobs.NewProductDAO(ordersapp.NewProductDAO(repos.Products), ordersOpts...),
		Customers:       ordersobs.NewCustomerDAO(ordersapp.NewCustomerDAO(repos.Customers), ordersOpts...),
		OrderHeaders:    ordersobs.NewOrderHeaderDAO(ordersapp.NewOrderHeaderDAO(repos.OrderHeaders), ordersOpts...),
		TermMetas:       wordpressobs.NewTermMetaDAO(wordpressapp.NewTermMetaDAO(repos.Terms, repos.TermMetas), wordpressOpts...),
		ElectricGuitars: inheritanceobs.NewElectricGuitars(inheritanceapp.NewElectricGuitars(repos.ElectricGuitars), inheritanceOpts...),
	}
}

// Handlers builds every HTTP adapter. A nil approvals orchestrator approves orders inline.
func Handlers(daos DAOs, approvals ordersports.ApprovalOrchestrator) []RouteRegistrar {
	if approvals == nil {
		approvals = ordersworkflows.NewInlineApprovalWorkflows(daos.OrderHeaders)
	}
	return []RouteRegistrar{
		bookstorehandler.NewAuthorAPI(daos.Authors),
		bookstorehandler.NewBookAPI(daos.Books),
		ordershandler.NewProductAPI(daos.Products),
		ordershandler.NewCustomerAPI(daos.Customers),
		ordershandler.NewOrderAPI(daos.OrderHeaders, approvals),
		wordpresshandler.NewTermAPI(daos.TermMetas),
		inheritancehandler.NewElectricGuitarAPI(daos.ElectricGuitars),
	}
}
