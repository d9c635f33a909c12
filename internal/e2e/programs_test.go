//go:build integration_test || all_tests

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	WeekID    int64  `json:"week_id"`
	Weeks     []node `json:"weeks"`
	Days      []node `json:"days"`
	Circuits  []node `json:"circuits"`
	Exercises []node `json:"exercises"`
	Sets      []node `json:"sets"`
}

func decodeNode(t *testing.T, raw json.RawMessage) node {
	t.Helper()
	var n node
	require.NoError(t, json.Unmarshal(raw, &n), string(raw))
	require.NotZero(t, n.ID)
	return n
}

func (s *E2ETestSuite) mustCreate(t *testing.T, token, path string, body any) apiResponse {
	t.Helper()
	status, resp := s.call(t, "POST", path, token, body)
	require.Equal(t, http.StatusCreated, status, "%s: %s %v", path, resp.Error, resp.Errors)
	return resp
}

func (s *E2ETestSuite) TestProgramLifecycle() {
	t := s.T()
	token := s.login(t, s.coachEmail)
	otherToken := s.login(t, s.otherEmail)

	program := decodeNode(t, s.mustCreate(t, token, "/api/programs", map[string]any{
		"name":     "Strength Block",
		"duration": 4,
	}).Program)
	week := decodeNode(t, s.mustCreate(t, token, fmt.Sprintf("/api/programs/%d/weeks", program.ID), map[string]any{
		"week_number": 1,
		"title":       "Base",
	}).Week)
	day := decodeNode(t, s.mustCreate(t, token, fmt.Sprintf("/api/weeks/%d/days", week.ID), map[string]any{
		"day_number":  1,
		"custom_rows": []map[string]string{{"label": "RPE"}},
	}).Day)
	circuit := decodeNode(t, s.mustCreate(t, token, fmt.Sprintf("/api/days/%d/circuits", day.ID), map[string]any{
		"circuit_number": 1,
		"title":          "A",
	}).Circuit)
	workout := decodeNode(t, s.mustCreate(t, token, "/api/workouts", map[string]any{
		"name":     "Back squat",
		"duration": 10,
	}).Workout)

	squat := decodeNode(t, s.mustCreate(t, token, fmt.Sprintf("/api/circuits/%d/exercises", circuit.ID), map[string]any{
		"name":       "Squat",
		"order":      0,
		"workout_id": workout.ID,
	}).Exercise)
	lunge := decodeNode(t, s.mustCreate(t, token, fmt.Sprintf("/api/circuits/%d/exercises", circuit.ID), map[string]any{
		"name":  "Lunge",
		"order": 1,
	}).Exercise)
	for i := 1; i <= 2; i++ {
		s.mustCreate(t, token, fmt.Sprintf("/api/exercises/%d/sets", squat.ID), map[string]any{
			"set_number": i,
			"reps":       "5",
			"weight":     "100kg",
		})
	}

	t.Run("unknown workout", func(t *testing.T) {
		status, resp := s.call(t, "POST", fmt.Sprintf("/api/circuits/%d/exercises", circuit.ID), token, map[string]any{
			"name":       "Ghost",
			"workout_id": 999999,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Errors, "workout_id")
	})

	t.Run("other trainer is forbidden", func(t *testing.T) {
		for _, path := range []string{
			fmt.Sprintf("/api/programs/%d", program.ID),
			fmt.Sprintf("/api/weeks/%d", week.ID),
			fmt.Sprintf("/api/days/%d", day.ID),
		} {
			status, resp := s.call(t, "GET", path, otherToken, nil)
			assert.Equal(t, http.StatusForbidden, status, path)
			assert.Equal(t, "forbidden", resp.Error)
		}

		status, _ := s.call(t, "DELETE", fmt.Sprintf("/api/weeks/%d", week.ID), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
		status, _ = s.call(t, "POST", fmt.Sprintf("/api/weeks/%d/duplicate", week.ID), otherToken, map[string]int{"week_number": 5})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, 1, s.countRows(t, "week"))
		assert.Equal(t, 2, s.countRows(t, "exercise"))
	})

	var weekCopy node
	t.Run("duplicate week", func(t *testing.T) {
		resp := s.mustCreate(t, token, fmt.Sprintf("/api/weeks/%d/duplicate", week.ID), map[string]int{"week_number": 2})
		weekCopy = decodeNode(t, resp.Week)
		assert.NotEqual(t, week.ID, weekCopy.ID)
		require.Len(t, weekCopy.Days, 1)
		require.Len(t, weekCopy.Days[0].Circuits, 1)
		exercises := weekCopy.Days[0].Circuits[0].Exercises
		require.Len(t, exercises, 2)
		assert.Equal(t, "Squat", exercises[0].Name)
		assert.Len(t, exercises[0].Sets, 2)
		assert.NotEqual(t, squat.ID, exercises[0].ID)

		assert.Equal(t, 2, s.countRows(t, "week"))
		assert.Equal(t, 2, s.countRows(t, "day"))
		assert.Equal(t, 2, s.countRows(t, "circuit"))
		assert.Equal(t, 4, s.countRows(t, "exercise"))
		assert.Equal(t, 4, s.countRows(t, "exercise_set"))

		// same ordinal again
		status, resp := s.call(t, "POST", fmt.Sprintf("/api/weeks/%d/duplicate", week.ID), token, map[string]int{"week_number": 2})
		assert.Equal(t, http.StatusConflict, status, resp.Error)
		assert.Equal(t, 2, s.countRows(t, "week"))
	})

	t.Run("duplicate day lands in the same week", func(t *testing.T) {
		resp := s.mustCreate(t, token, fmt.Sprintf("/api/days/%d/duplicate", day.ID), map[string]int{"day_number": 2})
		dayCopy := decodeNode(t, resp.Day)
		assert.Equal(t, week.ID, dayCopy.WeekID)
		assert.Equal(t, 3, s.countRows(t, "day"))
	})

	t.Run("reorder", func(t *testing.T) {
		status, resp := s.call(t, "POST", fmt.Sprintf("/api/circuits/%d/exercises/reorder", circuit.ID), token, map[string]any{
			"exercises": []map[string]int64{{"id": lunge.ID, "order": 0}, {"id": squat.ID, "order": 1}},
		})
		require.Equal(t, http.StatusOK, status, resp.Error)
		var exercises []node
		require.NoError(t, json.Unmarshal(resp.Exercises, &exercises))
		require.Len(t, exercises, 2)
		assert.Equal(t, lunge.ID, exercises[0].ID)
		assert.Equal(t, squat.ID, exercises[1].ID)

		// exercise from the copied week belongs to another circuit
		foreign := weekCopy.Days[0].Circuits[0].Exercises[0].ID
		status, _ = s.call(t, "POST", fmt.Sprintf("/api/circuits/%d/exercises/reorder", circuit.ID), token, map[string]any{
			"exercises": []map[string]int64{{"id": squat.ID, "order": 0}, {"id": foreign, "order": 1}},
		})
		assert.Equal(t, http.StatusBadRequest, status)

		var squatOrder int
		require.NoError(t, s.DB.QueryRow(`SELECT sort_order FROM exercise WHERE id = $1;`, squat.ID).Scan(&squatOrder))
		assert.Equal(t, 1, squatOrder)
	})

	t.Run("get program tree", func(t *testing.T) {
		status, resp := s.call(t, "GET", fmt.Sprintf("/api/programs/%d", program.ID), token, nil)
		require.Equal(t, http.StatusOK, status)
		tree := decodeNode(t, resp.Program)
		require.Len(t, tree.Weeks, 2)
		assert.Equal(t, week.ID, tree.Weeks[0].ID)
		assert.Equal(t, weekCopy.ID, tree.Weeks[1].ID)
	})

	t.Run("linked workout cannot be deleted by any trainer", func(t *testing.T) {
		var linked int
		require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM exercise WHERE workout_id = $1;`, workout.ID).Scan(&linked))
		// squat, its week copy and its day copy
		require.Equal(t, 3, linked)

		for _, tk := range []string{otherToken, token} {
			status, resp := s.call(t, "DELETE", fmt.Sprintf("/api/workouts/%d", workout.ID), tk, nil)
			assert.Equal(t, http.StatusConflict, status)
			assert.Equal(t, "workout is used by exercises", resp.Error)
		}

		require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM exercise WHERE workout_id = $1;`, workout.ID).Scan(&linked))
		assert.Equal(t, 3, linked)
	})

	t.Run("null unlinks the workout", func(t *testing.T) {
		status, resp := s.call(t, "PUT", fmt.Sprintf("/api/exercises/%d", squat.ID), token, map[string]any{
			"workout_id": nil,
			"tempo":      nil,
		})
		require.Equal(t, http.StatusOK, status, resp.Error)

		var workoutID, tempo *string
		var name string
		require.NoError(t, s.DB.QueryRow(
			`SELECT name, workout_id::text, tempo FROM exercise WHERE id = $1;`, squat.ID,
		).Scan(&name, &workoutID, &tempo))
		assert.Equal(t, "Squat", name)
		assert.Nil(t, workoutID)
		assert.Nil(t, tempo)

		status, _ = s.call(t, "PUT", fmt.Sprintf("/api/programs/%d", program.ID), token, map[string]any{"client_id": 5})
		require.Equal(t, http.StatusOK, status)
		status, _ = s.call(t, "PUT", fmt.Sprintf("/api/programs/%d", program.ID), token, map[string]any{"client_id": nil})
		require.Equal(t, http.StatusOK, status)

		var clientID *int64
		require.NoError(t, s.DB.QueryRow(`SELECT client_id FROM program WHERE id = $1;`, program.ID).Scan(&clientID))
		assert.Nil(t, clientID)
	})

	t.Run("cascade delete", func(t *testing.T) {
		status, resp := s.call(t, "DELETE", fmt.Sprintf("/api/weeks/%d", weekCopy.ID), token, nil)
		require.Equal(t, http.StatusOK, status, resp.Error)
		assert.Equal(t, map[string]int64{
			"week":     1,
			"day":      1,
			"circuit":  1,
			"exercise": 2,
			"set":      2,
		}, resp.Deleted)

		status, _ = s.call(t, "GET", fmt.Sprintf("/api/weeks/%d", weekCopy.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, resp = s.call(t, "DELETE", fmt.Sprintf("/api/programs/%d", program.ID), token, nil)
		require.Equal(t, http.StatusOK, status, resp.Error)
		assert.Equal(t, int64(1), resp.Deleted["program"])
		for _, table := range []string{"program", "week", "day", "circuit", "exercise", "exercise_set"} {
			assert.Zero(t, s.countRows(t, table), table)
		}

		// nothing links the workout anymore
		status, _ = s.call(t, "DELETE", fmt.Sprintf("/api/workouts/%d", workout.ID), token, nil)
		assert.Equal(t, http.StatusOK, status)
	})
}
