package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/days"
	"github.com/2beens/legday/internal/preferences"
	"github.com/2beens/legday/internal/selection"
	"github.com/2beens/legday/internal/units"
	"github.com/2beens/legday/internal/workouts"
)

func (s *IntegrationTestSuite) TestUnauthorized() {
	ctx := context.Background()

	status, _ := doRequest(ctx, s.T(), s.httpClient, "GET", "/days", "", nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = doRequest(ctx, s.T(), s.httpClient, "POST", "/days/resolve", "not-a-session", days.ResolveRequest{Date: "2024-03-15"})
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutFlow() {
	ctx := context.Background()
	t := s.T()
	token := newSession(ctx, t, s.redisClient, "flow-user")

	// resolve the day, twice
	pushSplit := 1
	status, body := doRequest(ctx, t, s.httpClient, "POST", "/days/resolve", token, days.ResolveRequest{
		Date:    "2024-03-15",
		SplitID: &pushSplit,
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	first := decode[days.Resolution](t, body)
	s.True(first.Created)

	status, body = doRequest(ctx, t, s.httpClient, "POST", "/days/resolve", token, days.ResolveRequest{
		Date:    "2024-03-15T18:30:00Z",
		SplitID: &pushSplit,
	})
	s.Require().Equal(http.StatusOK, status, string(body))
	second := decode[days.Resolution](t, body)
	s.False(second.Created)
	s.Equal(first.DateID, second.DateID)
	s.Equal(1, s.countRows("SELECT COUNT(*) FROM day WHERE user_id = $1", "flow-user"))

	status, body = doRequest(ctx, t, s.httpClient, "GET", fmt.Sprintf("/days/%d", first.DateID), token, nil)
	s.Require().Equal(http.StatusOK, status)
	day := decode[days.DayWithSplit](t, body)
	s.Require().NotNil(day.Split)
	s.Equal("Push", day.Split.Name)

	// the split is remembered for the selection
	status, body = doRequest(ctx, t, s.httpClient, "GET", "/preferences", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(1, decode[preferences.Preferences](t, body).LastSplitID)

	status, body = doRequest(ctx, t, s.httpClient, "GET", "/catalog/select", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(1, decode[selection.Result](t, body).Selection.SplitID)

	// missing fields are all reported, nothing is defaulted
	status, body = doRequest(ctx, t, s.httpClient, "POST", "/workouts", token, workouts.RecordWorkoutRequest{Weight: 10})
	s.Require().Equal(http.StatusBadRequest, status)
	var fields []string
	for _, fe := range decode[apierr.ErrorsResponse](t, body).Errors {
		fields = append(fields, fe.Field)
	}
	s.Equal([]string{"dateId", "bodyId", "exerciseId"}, fields)

	// pull exercise on a push day
	status, body = doRequest(ctx, t, s.httpClient, "POST", "/workouts", token, workouts.RecordWorkoutRequest{
		DateID: first.DateID, BodyID: 4, ExerciseID: 8, Weight: 315,
	})
	s.Require().Equal(http.StatusBadRequest, status)
	s.Contains(string(body), "exercise is not part of the day's split")

	status, body = doRequest(ctx, t, s.httpClient, "POST", "/workouts", token, workouts.RecordWorkoutRequest{
		DateID: first.DateID, BodyID: 1, ExerciseID: 1, Weight: 135, Description: "paused reps",
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	workout := decode[workouts.Workout](t, body)
	s.Equal(float64(workouts.DefaultRPE), workout.RPE)
	s.Equal("Bench Press", workout.ExerciseName)

	status, body = doRequest(ctx, t, s.httpClient, "GET", fmt.Sprintf("/days/%d/workouts", first.DateID), token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[workouts.ListWorkoutsResponse](t, body).Workouts, 1)

	// sets keep the metric they were typed in
	setsPath := fmt.Sprintf("/workouts/%d/sets", workout.ID)
	status, body = doRequest(ctx, t, s.httpClient, "POST", setsPath, token, workouts.RecordSetRequest{Reps: 5, Weights: 100, Metric: "lb"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	status, body = doRequest(ctx, t, s.httpClient, "POST", setsPath, token, workouts.RecordSetRequest{Reps: 3, Weights: 60, Metric: "kg"})
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, body = doRequest(ctx, t, s.httpClient, "GET", setsPath+"?unit=kg", token, nil)
	s.Require().Equal(http.StatusOK, status)
	sets := decode[workouts.SetsResponse](t, body).Sets
	s.Require().Len(sets, 2)
	s.Equal(100.0, sets[0].Weights)
	s.Equal(units.Pound, sets[0].Metric)
	s.Equal(45.36, sets[0].DisplayWeights)
	s.Equal(60.0, sets[1].DisplayWeights)

	// display preference kicks in without an explicit unit
	lb := "lb"
	status, _ = doRequest(ctx, t, s.httpClient, "PUT", "/preferences", token, preferences.UpdateRequest{DisplayMetric: &lb})
	s.Require().Equal(http.StatusOK, status)
	status, body = doRequest(ctx, t, s.httpClient, "GET", setsPath, token, nil)
	s.Require().Equal(http.StatusOK, status)
	sets = decode[workouts.SetsResponse](t, body).Sets
	s.Equal(132.28, sets[1].DisplayWeights)
	s.Equal(units.Pound, sets[1].DisplayMetric)
	s.Equal(60.0, sets[1].Weights)

	s.Equal(2, s.countRows("SELECT COUNT(*) FROM set_entry WHERE workout_id = $1", workout.ID))

	status, body = doRequest(ctx, t, s.httpClient, "GET", setsPath+"/latest", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(units.Kilogram, decode[workouts.Set](t, body).Metric)
}

func (s *IntegrationTestSuite) TestResolveUnknownSplit() {
	ctx := context.Background()
	t := s.T()
	token := newSession(ctx, t, s.redisClient, "lost-user")

	unknownSplit := 999
	status, body := doRequest(ctx, t, s.httpClient, "POST", "/days/resolve", token, days.ResolveRequest{
		Date:    "2024-05-02",
		SplitID: &unknownSplit,
	})
	s.Equal(http.StatusNotFound, status, string(body))
	s.Contains(string(body), "split not found")
	s.Equal(0, s.countRows("SELECT COUNT(*) FROM day WHERE user_id = $1", "lost-user"))
}

func (s *IntegrationTestSuite) TestDaysAreUserScoped() {
	ctx := context.Background()
	t := s.T()
	ownerToken := newSession(ctx, t, s.redisClient, "owner")
	otherToken := newSession(ctx, t, s.redisClient, "intruder")

	status, body := doRequest(ctx, t, s.httpClient, "POST", "/days/resolve", ownerToken, days.ResolveRequest{Date: "2024-04-01"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	res := decode[days.Resolution](t, body)

	status, _ = doRequest(ctx, t, s.httpClient, "GET", fmt.Sprintf("/days/%d", res.DateID), otherToken, nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = doRequest(ctx, t, s.httpClient, "POST", "/workouts", otherToken, workouts.RecordWorkoutRequest{
		DateID: res.DateID, BodyID: 1, ExerciseID: 1, Weight: 100,
	})
	s.Equal(http.StatusNotFound, status)

	// same date, other user, other day
	status, body = doRequest(ctx, t, s.httpClient, "POST", "/days/resolve", otherToken, days.ResolveRequest{Date: "2024-04-01"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	s.NotEqual(res.DateID, decode[days.Resolution](t, body).DateID)
}
