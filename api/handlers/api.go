package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/api"
	"github.com/invitetrackhq/invite-tracker-api/api/scheduler"
	"github.com/invitetrackhq/invite-tracker-api/config"
	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/gateway"
	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
)

// App stores the router, db connection and tracker services, so it can be reused
type App struct {
	Router     *mux.Router
	Config     config.Config
	Tracker    *tracker.Tracker
	Reconciler *tracker.Reconciler
	Scheduler  *scheduler.Scheduler
	dbHelper   databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewAdminDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	admin := Admin{ADB: databases.NewAdminDatabase(a.dbHelper)}
	stats := Stats{Tracker: a.Tracker}
	spaceConfig := SpaceConfig{DB: databases.NewSpaceConfigDatabase(a.dbHelper)}
	rewards := RewardRule{DB: databases.NewRewardRuleDatabase(a.dbHelper)}
	reconcile := Reconcile{Reconciler: a.Reconciler}
	events := Events{Tracker: a.Tracker}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")

	apiCreate.Handle("/space/{space_id}/stats/{referrer_id}", api.Middleware(http.HandlerFunc(stats.ReferrerStatsHandler))).Methods("GET")
	apiCreate.Handle("/space/{space_id}/leaderboard", api.Middleware(http.HandlerFunc(stats.LeaderboardHandler))).Methods("GET")

	apiCreate.Handle("/space/{space_id}/config", api.AdminMiddleware(http.HandlerFunc(spaceConfig.GetSpaceConfigHandler))).Methods("GET")
	apiCreate.Handle("/space/{space_id}/config", api.AdminMiddleware(http.HandlerFunc(spaceConfig.UpsertSpaceConfigHandler))).Methods("PUT")

	apiCreate.Handle("/space/{space_id}/reward-rules", api.AdminMiddleware(http.HandlerFunc(rewards.ListRewardRulesHandler))).Methods("GET")
	apiCreate.Handle("/space/{space_id}/reward-rules", api.AdminMiddleware(http.HandlerFunc(rewards.CreateRewardRuleHandler))).Methods("POST")
	apiCreate.Handle("/space/{space_id}/reward-rules/{rule_id}", api.AdminMiddleware(http.HandlerFunc(rewards.DeleteRewardRuleHandler))).Methods("DELETE")

	apiCreate.Handle("/space/{space_id}/reconciliation", api.AdminMiddleware(http.HandlerFunc(reconcile.StartSessionHandler))).Methods("POST")
	apiCreate.Handle("/reconciliation/{session_id}", api.AdminMiddleware(http.HandlerFunc(reconcile.GetSessionHandler))).Methods("GET")
	apiCreate.Handle("/reconciliation/{session_id}/resolve", api.AdminMiddleware(http.HandlerFunc(reconcile.ResolveMemberHandler))).Methods("POST")
	apiCreate.Handle("/reconciliation/{session_id}", api.AdminMiddleware(http.HandlerFunc(reconcile.CancelSessionHandler))).Methods("DELETE")

	r.HandleFunc("/ws/events", events.HandleEventsWebSocket)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("invite-tracker-api has connected to the database")

	gw := gateway.New(a.Config.GatewayURL, a.Config.GatewayToken)
	a.Tracker = tracker.New(
		gw,
		gw,
		gw,
		databases.NewJoinRecordDatabase(a.dbHelper),
		databases.NewReferrerStatsDatabase(a.dbHelper),
		databases.NewRewardRuleDatabase(a.dbHelper),
		databases.NewRewardGrantDatabase(a.dbHelper),
		databases.NewSpaceConfigDatabase(a.dbHelper),
		databases.NewInviteRecordDatabase(a.dbHelper),
		databases.NewDepartureLogDatabase(a.dbHelper),
		tracker.Classifier{Threshold: a.Config.FakeJoinThreshold},
	)
	a.Reconciler = tracker.NewReconciler(gw, a.Tracker.Stats(), a.Tracker.Rewards(), a.Config.ReconcileSessionTTL)

	a.Scheduler = scheduler.NewScheduler(a.Config, a.Tracker, a.Reconciler)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
