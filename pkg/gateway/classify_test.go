package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/gateway"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		mode    gateway.Mode
		ok      bool
		wantErr error
		message string
	}{
		{name: "status success", body: `{"status":"success"}`, mode: gateway.ModeBoth, ok: true},
		{name: "success flag", body: `{"success":true,"items":[]}`, mode: gateway.ModeBoth, ok: true},
		{name: "success flag in status mode", body: `{"success":true}`, mode: gateway.ModeStatus, wantErr: gateway.ErrApplication},
		{name: "status success in status mode", body: `{"status":"success"}`, mode: gateway.ModeStatus, ok: true},
		{name: "success string is not a flag", body: `{"success":"true"}`, mode: gateway.ModeBoth, wantErr: gateway.ErrApplication},
		{name: "failure with message", body: `{"status":"error","message":"no such user"}`, mode: gateway.ModeBoth, wantErr: gateway.ErrApplication, message: "no such user"},
		{name: "success false", body: `{"success":false,"message":"denied"}`, mode: gateway.ModeBoth, wantErr: gateway.ErrApplication, message: "denied"},
		{name: "not json", body: `oops`, mode: gateway.ModeBoth, wantErr: gateway.ErrResponseFormat},
		{name: "json array", body: `[1,2]`, mode: gateway.ModeBoth, wantErr: gateway.ErrResponseFormat},
		{name: "json null", body: `null`, mode: gateway.ModeBoth, wantErr: gateway.ErrResponseFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := gateway.Classify([]byte(tt.body), tt.mode)
			if tt.ok {
				require.NoError(t, err)
				assert.JSONEq(t, tt.body, string(res.Raw()))
				return
			}
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				var ae *gateway.ApplicationError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, tt.message, ae.Message)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := gateway.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, gateway.ModeBoth, m)

	m, err = gateway.ParseMode(" Status ")
	require.NoError(t, err)
	assert.Equal(t, gateway.ModeStatus, m)

	_, err = gateway.ParseMode("legacy")
	assert.ErrorIs(t, err, gateway.ErrInvalidMode)
}
