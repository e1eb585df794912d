package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/Tetricia805/DayStar-DayCare-center/attendance"
	"github.com/Tetricia805/DayStar-DayCare-center/authentication"
	"github.com/Tetricia805/DayStar-DayCare-center/babysitters"
	"github.com/Tetricia805/DayStar-DayCare-center/children"
	"github.com/Tetricia805/DayStar-DayCare-center/finance"
	"github.com/Tetricia805/DayStar-DayCare-center/incidents"
	. "github.com/Tetricia805/DayStar-DayCare-center/shared"
	. "github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/migrations"

	"github.com/facebookgo/inject"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"
)

var (
	ctx             = context.Background()
	logger          = NewLogger("daystar")
	config          *AppConfig
	db              *gorm.DB
	stringGenerator = &StringGenerator{}

	authenticationService = &authentication.AuthenticationService{}
	babysitterService     = &babysitters.BabysitterService{}
	childService          = &children.ChildService{}
	attendanceService     = &attendance.AttendanceService{}
	incidentService       = &incidents.IncidentService{}
	financeService        = &finance.FinanceService{}

	authenticationHandlerFactory = &authentication.HandlerFactory{}
	babysitterHandlerFactory     = &babysitters.HandlerFactory{}
	childrenHandlerFactory       = &children.HandlerFactory{}
	attendanceHandlerFactory     = &attendance.HandlerFactory{}
	incidentHandlerFactory       = &incidents.HandlerFactory{}
	financeHandlerFactory        = &finance.HandlerFactory{}

	dbStore       = &Store{}
	authenticator = &authentication.Authenticator{}
)

func init() {
	checkErrAndExit(initAppConfiguration())
	checkErrAndExit(initPostgresConnection())
	checkErrAndExit(initApplicationGraph())
}

func initAppConfiguration() (err error) {
	config, err = InitAppConfiguration()
	return
}

func initPostgresConnection() (err error) {
	connectString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.PgContactPoint,
		config.PgContactPort,
		config.PgUsername,
		config.PgPassword,
		config.PgDbName)
	db, err = gorm.Open("postgres", connectString)
	if err != nil {
		return
	}

	db.LogMode(true)
	db.SetLogger(logger)
	return
}

func initApplicationGraph() error {
	g := inject.Graph{}
	g.Provide(
		&inject.Object{Value: config},
		&inject.Object{Value: authenticationService},
		&inject.Object{Value: babysitterService},
		&inject.Object{Value: childService},
		&inject.Object{Value: attendanceService},
		&inject.Object{Value: incidentService},
		&inject.Object{Value: financeService},
		&inject.Object{Value: authenticationHandlerFactory},
		&inject.Object{Value: babysitterHandlerFactory},
		&inject.Object{Value: childrenHandlerFactory},
		&inject.Object{Value: attendanceHandlerFactory},
		&inject.Object{Value: incidentHandlerFactory},
		&inject.Object{Value: financeHandlerFactory},
		&inject.Object{Value: db},
		&inject.Object{Value: stringGenerator},
		&inject.Object{Value: dbStore},
		&inject.Object{Value: authenticator},
		&inject.Object{Value: logger},
	)
	if err := g.Populate(); err != nil {
		return errors.Wrap(err, "failed to populate")
	}
	return nil
}

func main() {
	if config.StartupMigration {
		applySqlSchemaMigrations(ctx)
	}
	startHttpServer(ctx)
}

func applySqlSchemaMigrations(ctx context.Context) {
	logger.Info(ctx, "applying sql schema migrations")
	migrationResult := migrations.Up(migrations.ApplyOptions{
		SourceURL: fmt.Sprintf("file://%s", config.SqlMigrationsSourceDir),
		DatabaseURL: fmt.Sprintf("postgres://%v:%v/%v?sslmode=disable&user=%s&password=%s",
			config.PgContactPoint, config.PgContactPort, config.PgDbName, config.PgUsername, config.PgPassword),
	})
	checkErrAndExit(migrationResult.Err)
	if !migrationResult.Changes {
		logger.Info(ctx, "no new migrations applied")
	}
}

func startHttpServer(ctx context.Context) {
	authOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(authentication.EncodeError),
	}

	babysitterOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(babysitters.EncodeError),
	}

	childrenOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(children.EncodeError),
	}

	attendanceOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(attendance.EncodeError),
	}

	incidentOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(incidents.EncodeError),
	}

	financeOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(finance.EncodeError),
	}

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	router.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api").Subrouter()

	apiRouter.Handle("/auth/register", authenticationHandlerFactory.Register(authOpts)).Methods(http.MethodPost)
	apiRouter.Handle("/auth/login", authenticationHandlerFactory.Login(authOpts)).Methods(http.MethodPost)
	apiRouter.Handle("/auth/me", authenticator.Roles(authenticationHandlerFactory.Me(authOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER, ROLE_PARENT)).Methods(http.MethodGet)
	apiRouter.Handle("/auth/profile", authenticator.Roles(authenticationHandlerFactory.UpdateProfile(authOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER, ROLE_PARENT)).Methods(http.MethodPut)

	apiRouter.Handle("/babysitters", authenticator.Roles(babysitterHandlerFactory.Add(babysitterOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/babysitters", authenticator.Roles(babysitterHandlerFactory.List(babysitterOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/babysitters/{babysitterId}", authenticator.Roles(babysitterHandlerFactory.Get(babysitterOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/babysitters/{babysitterId}", authenticator.Roles(babysitterHandlerFactory.Update(babysitterOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPut)
	apiRouter.Handle("/babysitters/{babysitterId}", authenticator.Roles(babysitterHandlerFactory.Delete(babysitterOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodDelete)

	apiRouter.Handle("/children", authenticator.Roles(childrenHandlerFactory.Add(childrenOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/children", authenticator.Roles(childrenHandlerFactory.List(childrenOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodGet)
	apiRouter.Handle("/children/{childId}", authenticator.Roles(childrenHandlerFactory.Get(childrenOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodGet)
	apiRouter.Handle("/children/{childId}", authenticator.Roles(childrenHandlerFactory.Update(childrenOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPut)
	apiRouter.Handle("/children/{childId}", authenticator.Roles(childrenHandlerFactory.Delete(childrenOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodDelete)

	apiRouter.Handle("/attendance", authenticator.Roles(attendanceHandlerFactory.Add(attendanceOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodPost)
	apiRouter.Handle("/attendance", authenticator.Roles(attendanceHandlerFactory.List(attendanceOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodGet)
	apiRouter.Handle("/attendance/report", authenticator.Roles(attendanceHandlerFactory.Report(attendanceOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/attendance/child/{childId}", authenticator.Roles(attendanceHandlerFactory.ListByChild(attendanceOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER, ROLE_PARENT)).Methods(http.MethodGet)
	apiRouter.Handle("/attendance/{attendanceId}", authenticator.Roles(attendanceHandlerFactory.Update(attendanceOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodPut)

	apiRouter.Handle("/incidents", authenticator.Roles(incidentHandlerFactory.Add(incidentOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodPost)
	apiRouter.Handle("/incidents", authenticator.Roles(incidentHandlerFactory.List(incidentOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodGet)
	apiRouter.Handle("/incidents/report", authenticator.Roles(incidentHandlerFactory.Report(incidentOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/incidents/child/{childId}", authenticator.Roles(incidentHandlerFactory.ListByChild(incidentOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER, ROLE_PARENT)).Methods(http.MethodGet)
	apiRouter.Handle("/incidents/{incidentId}", authenticator.Roles(incidentHandlerFactory.Update(incidentOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER)).Methods(http.MethodPut)

	apiRouter.Handle("/finance/income", authenticator.Roles(financeHandlerFactory.AddIncome(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/finance/income", authenticator.Roles(financeHandlerFactory.ListIncome(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/finance/expenses", authenticator.Roles(financeHandlerFactory.AddExpense(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/finance/expenses", authenticator.Roles(financeHandlerFactory.ListExpenses(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/finance/budget", authenticator.Roles(financeHandlerFactory.AddBudget(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/finance/budget", authenticator.Roles(financeHandlerFactory.ListBudget(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/finance/dashboard", authenticator.Roles(financeHandlerFactory.Dashboard(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)
	apiRouter.Handle("/finance/reports", authenticator.Roles(financeHandlerFactory.Report(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodGet)

	apiRouter.Handle("/finance/payments", authenticator.Roles(financeHandlerFactory.AddPayment(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPost)
	apiRouter.Handle("/finance/payments", authenticator.Roles(financeHandlerFactory.ListPayments(financeOpts), ROLE_ADMIN, ROLE_MANAGER, ROLE_PARENT)).Methods(http.MethodGet)
	apiRouter.Handle("/finance/payments/{paymentId}", authenticator.Roles(financeHandlerFactory.UpdatePaymentStatus(financeOpts), ROLE_ADMIN, ROLE_MANAGER)).Methods(http.MethodPut)

	checkErrAndExit(http.ListenAndServe(config.ListenAddress,
		logger.RequestLoggerMiddleware(
			authenticator.Verify(router, []string{"/healthz", "/readyz", "/api/auth/register", "/api/auth/login"}),
		),
	))
}

func checkErrAndExit(err error) {
	if err == nil {
		return
	}
	fmt.Println(err.Error())
	os.Exit(1)
}
