package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/teams/search", handler.SearchTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/fixtures", handler.ListTeamFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/events", handler.ListFixtureEvents)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/me/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
	mux.Handle("PUT /v1/me/follows/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.FollowTeam)))
	mux.Handle("DELETE /v1/me/follows/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UnfollowTeam)))
}

func registerInternalSyncRoutes(mux *http.ServeMux, handler *Handler, internalSyncToken string) {
	mux.Handle("POST /v1/internal/sync", RequireInternalSyncToken(internalSyncToken, http.HandlerFunc(handler.RunSync)))
}
