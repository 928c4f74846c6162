package client

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"mom-toolkit/core/server"
)

// ScriptData is interpolated into the launch script.
type ScriptData struct {
	InstallPath  string
	ArchBits     string
	ArchPlatform string
	HostBits     int
}

var unixScript = template.Must(template.New("launch_server.sh").Parse(`#!/bin/bash
# MoM Server Launch Script
# Generated by extract_from_client

# Set MOM_INSTALL
export MOM_INSTALL="{{.InstallPath}}"

# Set PYTHONPATH
export PYTHONPATH=$MOM_INSTALL:$MOM_INSTALL/library.zip:$PYTHONPATH

# Set library path for TGE binaries
export LD_LIBRARY_PATH=$MOM_INSTALL:$MOM_INSTALL/lib:$LD_LIBRARY_PATH

# Architecture info
# pytge: {{.ArchBits}} {{.ArchPlatform}}
# Python: {{.HostBits}}-bit

cd "$(dirname "$0")"

echo "Environment:"
echo "  MOM_INSTALL: $MOM_INSTALL"
echo "  PYTHONPATH: $PYTHONPATH"
echo ""

# Uncomment the server you want to run:
# python2.7 check_installation.py
# python2.7 MasterServer.py gameconfig=mom.cfg
# python2.7 GMServer.py gameconfig=mom.cfg
# python2.7 CharacterServer.py gameconfig=mom.cfg
# python2.7 WorldManager.py gameconfig=mom.cfg

echo "Edit this script to uncomment the server you want to run"
`))

var windowsScript = template.Must(template.New("launch_server.bat").Parse(`@echo off
REM MoM Server Launch Script
REM Generated by extract_from_client

REM Architecture info
REM pytge: {{.ArchBits}} {{.ArchPlatform}}
REM Python: {{.HostBits}}-bit

set MOM_INSTALL={{.InstallPath}}
set PYTHONPATH=%MOM_INSTALL%;%MOM_INSTALL%\library.zip;%PYTHONPATH%

cd /d "%~dp0"

echo Environment:
echo   MOM_INSTALL: %MOM_INSTALL%
echo   PYTHONPATH: %PYTHONPATH%
echo.

REM Uncomment the server you want to run:
REM python check_installation.py
REM python MasterServer.py gameconfig=mom.cfg
REM python GMServer.py gameconfig=mom.cfg
REM python CharacterServer.py gameconfig=mom.cfg
REM python WorldManager.py gameconfig=mom.cfg

echo Edit this script to uncomment the server you want to run
pause
`))

// ScriptName is the launch script file name for an OS family.
func ScriptName(family string) string {
	if family == server.FamilyWindows {
		return "launch_server.bat"
	}
	return "launch_server.sh"
}

// ScriptPath is where the script for dest is written: next to dest.
func ScriptPath(dest, family string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(dest)), ScriptName(family))
}

// WriteScript renders the launch script and returns its path. Unix scripts
// are made executable.
func WriteScript(dest, family string, data ScriptData) (string, error) {
	tpl := unixScript
	if family == server.FamilyWindows {
		tpl = windowsScript
	}

	path := ScriptPath(dest, family)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create launch script: %w", err)
	}
	defer f.Close()

	if err := tpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render launch script: %w", err)
	}

	if family != server.FamilyWindows {
		if err := f.Chmod(0755); err != nil {
			return "", fmt.Errorf("failed to mark launch script executable: %w", err)
		}
	}
	return path, nil
}
