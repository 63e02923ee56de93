package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/floodrelief/relief-api/schema"
	"github.com/floodrelief/relief-api/store"
)

func TestSearchEvacuees(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.store.EXPECT().SearchEvacuees(gomock.Any(), "สมชาย").Return([]schema.Evacuee{
		{ID: "e1", FirstName: "สมชาย", LastName: "ใจดี", Status: schema.EvacueeSafe},
	}, nil).Times(1)

	w := ts.do("GET", "/api/evacuees?q=%E0%B8%AA%E0%B8%A1%E0%B8%8A%E0%B8%B2%E0%B8%A2", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Evacuees []schema.Evacuee `json:"evacuees"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Evacuees, 1)
	assert.Equal(t, "e1", resp.Evacuees[0].ID)
}

func TestEvacueeStatsAreCached(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.store.EXPECT().EvacueeStats(gomock.Any()).Return(&schema.EvacueeStats{
		Total:      3,
		ByGender:   []schema.GenderCount{{Gender: "ชาย", Count: 2}, {Gender: "หญิง", Count: 1}},
		ByDistrict: []schema.DistrictCount{{District: "เมือง", Count: 3}},
	}, nil).Times(1)

	for i := 0; i < 2; i++ {
		w := ts.do("GET", "/api/evacuees/stats", nil)
		assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

		var stats schema.EvacueeStats
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, "เมือง", stats.ByDistrict[0].District)
	}
}

func TestParseRoster(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	text := "1,28/11/2024 10:00,ศูนย์พักพิงหาดใหญ่,สมชาย,ใจดี,ชาย,เมือง|หาดใหญ่,12 ถนนเพชรเกษม\n" +
		"ลำดับ,เวลา,ศูนย์,ชื่อ,นามสกุล,เพศ,อำเภอ,ที่อยู่\n" +
		",,,\n"

	w := ts.do("POST", "/api/evacuees/parse", map[string]string{"text": text})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Success bool             `json:"success"`
		Data    []schema.Evacuee `json:"data"`
		Count   int              `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "สมชาย", resp.Data[0].FirstName)
	assert.Equal(t, "เมือง", resp.Data[0].District)
	assert.Equal(t, "หาดใหญ่", resp.Data[0].SubDistrict)
}

func TestImportEvacuees(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	stats := &schema.EvacueeStats{ByGender: []schema.GenderCount{}, ByDistrict: []schema.DistrictCount{}}
	ts.store.EXPECT().EvacueeStats(gomock.Any()).Return(stats, nil).Times(2)
	ts.store.EXPECT().BulkInsertEvacuees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evacuees []schema.Evacuee) store.BulkResult {
			assert.Len(t, evacuees, 2)
			assert.Equal(t, "keep-me", evacuees[0].ID)
			assert.NotEmpty(t, evacuees[1].ID)
			for _, e := range evacuees {
				assert.NotNil(t, e.ImportedAt)
				assert.Equal(t, schema.EvacueeSafe, e.Status)
			}
			return store.BulkResult{SuccessCount: 2}
		}).Times(1)

	ts.do("GET", "/api/evacuees/stats", nil)

	w := ts.do("POST", "/api/evacuees/import", map[string]interface{}{
		"evacuees": []schema.Evacuee{
			{ID: "keep-me", FirstName: "สมชาย", District: "เมือง", Status: schema.EvacueeSafe},
			{FirstName: "สมหญิง", District: "เมือง"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Import completed", resp["message"])
	assert.Equal(t, float64(2), resp["successCount"])
	assert.Equal(t, float64(0), resp["errorCount"])
	assert.Equal(t, "", resp["firstError"])

	// the import invalidates the cached stats
	ts.do("GET", "/api/evacuees/stats", nil)
}

func TestImportEvacueesEmpty(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	w := ts.do("POST", "/api/evacuees/import", map[string]interface{}{"evacuees": []interface{}{}})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1400), decodeError(t, w).Code)
}
