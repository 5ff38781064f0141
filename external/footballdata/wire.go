package footballdata

// Wire types for the API-Football v3 response envelopes. Every endpoint wraps
// its rows in "response" and reports paging plus per-request errors alongside.

type apiErrors map[string]any

type leaguesEnvelope struct {
	Errors   apiErrors    `json:"errors"`
	Response []leagueItem `json:"response"`
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
	Seasons []struct {
		Year    int  `json:"year"`
		Current bool `json:"current"`
	} `json:"seasons"`
}

type teamsEnvelope struct {
	Errors   apiErrors  `json:"errors"`
	Response []teamItem `json:"response"`
}

type teamItem struct {
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
		Logo string `json:"logo"`
	} `json:"team"`
}

type fixturesEnvelope struct {
	Errors   apiErrors     `json:"errors"`
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int64 `json:"id"`
		Season int   `json:"season"`
	} `json:"league"`
	Teams struct {
		Home struct {
			ID int64 `json:"id"`
		} `json:"home"`
		Away struct {
			ID int64 `json:"id"`
		} `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type eventsEnvelope struct {
	Errors   apiErrors   `json:"errors"`
	Response []eventItem `json:"response"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
	Player struct {
		Name string `json:"name"`
	} `json:"player"`
	Type     string `json:"type"`
	Detail   string `json:"detail"`
	Comments string `json:"comments"`
}

type standingsEnvelope struct {
	Errors   apiErrors      `json:"errors"`
	Response []standingItem `json:"response"`
}

type standingItem struct {
	League struct {
		ID        int64           `json:"id"`
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}

type standingRow struct {
	Rank int `json:"rank"`
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
	Points    int `json:"points"`
	GoalsDiff int `json:"goalsDiff"`
	All       struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}
