package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSiteConfig_EmptyFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadSiteConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	require.Equal(t, "NOT-SET", cfg.Title)
	require.Equal(t, "NOT-SET", cfg.Name)
	require.Equal(t, "NOT-SET", cfg.SiteDescription)
	require.Equal(t, "NOT-SET", cfg.Description)
	require.Equal(t, "NOT-SET", cfg.Author)
	require.Equal(t, "NOT-SET.html", cfg.Prev)
	require.Equal(t, "NOT-SET.html", cfg.Next)
	require.Equal(t, "", cfg.BaseURL)
	require.Empty(t, cfg.Params)
}

func TestLoadSiteConfig_DerivedDefaults_FollowSourceKeys(t *testing.T) {
	cfg, err := LoadSiteConfig(writeConfig(t, "title: Hegemonie\nsite_description: A strategy game\n"))
	require.NoError(t, err)

	require.Equal(t, "Hegemonie", cfg.Name)
	require.Equal(t, "A strategy game", cfg.Description)
}

func TestLoadSiteConfig_ExplicitValues_WinOverDefaults(t *testing.T) {
	cfg, err := LoadSiteConfig(writeConfig(t, `
title: Hegemonie
name: hegemonie.be
description: Page description
site_description: Site description
author: jfs
baseurl: https://www.hegemonie.be
prev: index.html
next: about.html
github: jfsmig/hegemonie
Menu:
  - index.html
`))
	require.NoError(t, err)

	require.Equal(t, "hegemonie.be", cfg.Name)
	require.Equal(t, "Page description", cfg.Description)
	require.Equal(t, "Site description", cfg.SiteDescription)
	require.Equal(t, "jfs", cfg.Author)
	require.Equal(t, "https://www.hegemonie.be", cfg.BaseURL)
	require.Equal(t, "index.html", cfg.Prev)
	require.Equal(t, "about.html", cfg.Next)
	require.Equal(t, "jfsmig/hegemonie", cfg.Params["github"])
	require.Contains(t, cfg.Params, "menu")
	require.NotContains(t, cfg.Params, "title")
}

func TestLoadSiteConfig_EnvOverride_WinsOverFile(t *testing.T) {
	t.Setenv("WWWGEN_AUTHOR", "from-env")
	cfg, err := LoadSiteConfig(writeConfig(t, "author: from-file\n"))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Author)
}

func TestLoadSiteConfig_MissingFile_ReturnsNotExist(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSiteConfig_MalformedYAML_ReturnsError(t *testing.T) {
	_, err := LoadSiteConfig(writeConfig(t, "title: [unclosed\n"))
	require.Error(t, err)
}

func TestLoadEnvFile_NoFile_IsNoop(t *testing.T) {
	require.NoError(t, LoadEnvFile(t.TempDir()))
}

func TestLoadEnvFile_SetsMissingVariables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WWWGEN_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("WWWGEN_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("WWWGEN_TEST_DOTENV"))

	require.NoError(t, LoadEnvFile(dir))
	require.Equal(t, "loaded", os.Getenv("WWWGEN_TEST_DOTENV"))
}

func TestURLFor_JoinsWithSingleSlash(t *testing.T) {
	cfg := &SiteConfig{BaseURL: "https://example.org/"}
	require.Equal(t, "https://example.org/blog/a.html", cfg.URLFor("blog/a.html"))

	cfg.BaseURL = ""
	require.Equal(t, "/index.html", cfg.URLFor("index.html"))
}
