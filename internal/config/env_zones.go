package config

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/libredomains/checker/internal/file"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/zone"
)

// zonesFile is the format of ZONES_FILE.
type zonesFile struct {
	Zones []struct {
		Name    string `yaml:"name"`
		Enabled *bool  `yaml:"enabled"` // defaults to true
		Path    string `yaml:"path"`
	} `yaml:"zones"`
}

func readZoneList(ppfmt pp.PP, key string, enabled bool, zones *[]zone.Zone) bool {
	for _, name := range Getenvs(key) {
		z, err := zone.New(name, enabled, "")
		if err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "%s contains an ill-formed zone %v", key, err)
			return false
		}
		*zones = append(*zones, z)
	}
	return true
}

// ReadZonesFile reads the zones listed in a YAML file.
func ReadZonesFile(ppfmt pp.PP, key string, field *[]zone.Zone) bool {
	path := Getenv(key)
	if path == "" {
		return true
	}

	content, ok := file.ReadString(ppfmt, path)
	if !ok {
		return false
	}

	var parsed zonesFile
	decoder := yaml.NewDecoder(strings.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse %q (%s): %v", path, key, err)
		return false
	}

	if len(parsed.Zones) == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "%q (%s) lists no zones", path, key)
		return false
	}

	zones := make([]zone.Zone, 0, len(parsed.Zones))
	for _, entry := range parsed.Zones {
		enabled := entry.Enabled == nil || *entry.Enabled
		z, err := zone.New(entry.Name, enabled, entry.Path)
		if err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "%q (%s) contains an ill-formed zone %v", path, key, err)
			return false
		}
		zones = append(zones, z)
	}

	*field = zones
	return true
}

// ReadZones reads the open and paused zones. ZONES_FILE replaces ZONES and
// PAUSED_ZONES; setting either of the latter replaces both defaults.
func ReadZones(ppfmt pp.PP, keyOpen, keyPaused, keyFile string, field *[]zone.Zone) bool {
	if Getenv(keyFile) != "" {
		if Getenv(keyOpen) != "" || Getenv(keyPaused) != "" {
			ppfmt.Noticef(pp.EmojiUserWarning, "%s and %s are ignored because %s is set", keyOpen, keyPaused, keyFile)
		}
		return ReadZonesFile(ppfmt, keyFile, field)
	}

	if Getenv(keyOpen) == "" && Getenv(keyPaused) == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s and %s=%s",
			keyOpen, describeZones(*field, true), keyPaused, describeZones(*field, false))
		return true
	}

	zones := []zone.Zone{}
	if !readZoneList(ppfmt, keyOpen, true, &zones) || !readZoneList(ppfmt, keyPaused, false, &zones) {
		return false
	}
	if len(zones) == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "No zones are listed in %s or %s", keyOpen, keyPaused)
		return false
	}

	*field = zones
	return true
}

func describeZones(zones []zone.Zone, enabled bool) string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		if z.Enabled == enabled {
			names = append(names, z.Describe())
		}
	}
	return strings.Join(names, ",")
}
