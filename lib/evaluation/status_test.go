package evaluation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fairhire-backend/models"
)

func TestDecideStatus(t *testing.T) {
	cases := []struct {
		score    float64
		expected models.ApplicationStatus
	}{
		{80, models.ApplicationStatusApproved},
		{60, models.ApplicationStatusApproved},
		{55, models.ApplicationStatusApproved},
		{54.999, models.ApplicationStatusRejected},
		{40, models.ApplicationStatusRejected},
		{0, models.ApplicationStatusRejected},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, DecideStatus(c.score), "score %v", c.score)
	}
}
