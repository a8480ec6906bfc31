package responses

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneStatus_UserInfoRendering(t *testing.T) {
	userID := "user-1"

	t.Run("linked without profile renders null user_info", func(t *testing.T) {
		body, err := json.Marshal(&PhoneStatus{
			IsLinked:    true,
			UserID:      &userID,
			PhoneNumber: "+15551234567",
			Status:      "linked",
			PhoneStatusLinked: &PhoneStatusLinked{
				PhoneLinkInfo: &PhoneLinkInfo{LinkedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		value, present := decoded["user_info"]
		assert.True(t, present)
		assert.Nil(t, value)
		assert.Contains(t, decoded, "phone_link_info")
	})

	t.Run("unlinked omits linked details", func(t *testing.T) {
		body, err := json.Marshal(&PhoneStatus{PhoneNumber: "+15550000000", Status: "unlinked"})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.NotContains(t, decoded, "user_info")
		assert.NotContains(t, decoded, "phone_link_info")
		assert.Contains(t, decoded, "user_id")
	})
}
