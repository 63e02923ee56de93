package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/external/llm"
	"github.com/floodrelief/relief-api/schema"
)

const pastedPost = "ชื่อ: สมชาย ใจดี\nเบอร์: 081-234-5678\nที่อยู่: 123 ซอยลาดพร้าว\nจำนวน: 5 คน\nต้องการ: น้ำดื่ม อาหาร ด่วน!"

type parseResponse struct {
	Success bool                          `json:"success"`
	Data    []schema.HelpRequestCandidate `json:"data"`
	Count   int                           `json:"count"`
}

func TestParseRequests(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	w := ts.do("POST", "/api/parse", map[string]string{"text": pastedPost + "\n\nสั้น"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp parseResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "สมชาย ใจดี", resp.Data[0].Name)
	assert.Equal(t, "0812345678", resp.Data[0].Phone)
	assert.Equal(t, schema.PriorityHigh, resp.Data[0].Priority)
}

func TestParseRequestsEmptyText(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	for _, path := range []string{"/api/parse", "/api/parse-ai", "/api/evacuees/parse"} {
		w := ts.do("POST", path, map[string]string{"text": "  \n "})
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for %s", path)
		assert.Equal(t, int64(1300), decodeError(t, w).Code)
	}
}

func TestParseRequestsWithAI(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.extractor.EXPECT().Extract(gomock.Any(), pastedPost).Return([]schema.HelpRequestCandidate{
		{
			Name:        "สมชาย ใจดี",
			Phone:       "0812345678",
			Location:    schema.Location{Address: "123 ซอยลาดพร้าว"},
			PeopleCount: 5,
			Needs:       []string{consts.NeedWater},
			Priority:    schema.PriorityHigh,
		},
	}, nil).Times(1)

	w := ts.do("POST", "/api/parse-ai", map[string]string{"text": pastedPost})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp parseResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 5, resp.Data[0].PeopleCount)
}

func TestParseRequestsWithAIMissingKey(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, llm.ErrMissingAPIKey).Times(1)

	w := ts.do("POST", "/api/parse-ai", map[string]string{"text": pastedPost})
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	resp := decodeError(t, w)
	assert.Equal(t, int64(1301), resp.Code)
	assert.Equal(t, "Configuration Error", resp.Error)
}

func TestParseRequestsWithAIUnreadableReply(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
		Return(nil, &llm.ParseError{Fragment: "ขออภัย", Err: llm.ErrNoJSONArray}).Times(1)

	w := ts.do("POST", "/api/parse-ai", map[string]string{"text": pastedPost})
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	resp := decodeError(t, w)
	assert.Equal(t, int64(1302), resp.Code)
	assert.Equal(t, "AI did not return valid JSON", resp.Error)
	assert.Equal(t, "ขออภัย", resp.Details)
}

func TestParseRequestsWithAIUnavailable(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	ts.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("chat completion: connection refused")).Times(1)

	w := ts.do("POST", "/api/parse-ai", map[string]string{"text": pastedPost})
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	resp := decodeError(t, w)
	assert.Equal(t, int64(1303), resp.Code)
	assert.Equal(t, "chat completion: connection refused", resp.Details)
}

func TestExportCandidates(t *testing.T) {
	ts, ctl := newTestServer(t, false)
	defer ctl.Finish()

	w := ts.do("POST", "/api/parse/export", map[string]interface{}{
		"requests": []schema.HelpRequestCandidate{
			{Name: "สมชาย", Phone: "0812345678", Location: schema.Location{Address: "หาดใหญ่"},
				PeopleCount: 2, Needs: []string{consts.NeedWater, consts.NeedFood}, Priority: schema.PriorityNormal},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"parsed-requests-")

	lines := strings.Split(w.Body.String(), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "\ufeff\"ชื่อ\""))
	assert.Equal(t, `"สมชาย","0812345678","หาดใหญ่","2","น้ำดื่ม, อาหาร","","Normal"`, lines[1])
}
