// Package version checks for newer themer releases.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/themer-cli/themer/filesystem"
	"github.com/themer-cli/themer/util"
	"github.com/themer-cli/themer/where"
)

// ReleasesURL answers with the latest published release.
const ReleasesURL = "https://api.github.com/repos/themer-cli/themer/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var client = &http.Client{Timeout: 5 * time.Second}

// Latest returns the newest release version without the "v" prefix.
// Answers are cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := client.Get(ReleasesURL)
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
