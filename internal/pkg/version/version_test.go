package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShort 測試短版本字符串
func TestShort(t *testing.T) {
	oldVer, oldCommit := Version, GitCommit
	defer func() { Version, GitCommit = oldVer, oldCommit }()

	Version, GitCommit = "1.2.3", ""
	assert.Equal(t, "v1.2.3", Short())

	GitCommit = "abcdef01"
	assert.Equal(t, "v1.2.3 (abcdef01)", Short())
}

// TestInfo 測試完整版本信息
func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, Version)
	assert.Contains(t, info, GoVersion)
}

func TestUserAgent(t *testing.T) {
	assert.Contains(t, UserAgent(), "prism-panel/"+Version)
}
