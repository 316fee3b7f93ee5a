package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(v, tag, summary string) {
		Version, GitTag, GitSummary = v, tag, summary
	}(Version, GitTag, GitSummary)

	Version, GitTag, GitSummary = "", "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	GitSummary = "4cb95ca-dirty"
	require.Equal(t, "4cb95ca-dirty", AppVersion())

	GitTag = "v1.5.0"
	require.Equal(t, "v1.5.0", AppVersion())

	Version = "1.6.0"
	require.Equal(t, "1.6.0", AppVersion())
}
