//go:build windows

package remove

import (
	"os"
	"path/filepath"
)

func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// ProtectedRoots returns the paths the remover must never delete outright.
// Environment variables are used so installations on any drive letter are
// covered, not just C:.
func ProtectedRoots() []string {
	w := winDir()
	sd := systemDrive()
	roots := []string{
		w,
		filepath.Join(w, "System32"),
		filepath.Join(w, "SysWOW64"),
		filepath.Join(w, "WinSxS"),
		filepath.Join(sd, "Boot"),
		filepath.Join(sd, "EFI"),
		filepath.Join(sd, "Recovery"),
		filepath.Join(sd, "Users"),
		programFiles(),
		programFilesX86(),
		programData(),
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		roots = append(roots,
			home,
			filepath.Join(home, "AppData"),
			filepath.Join(home, "AppData", "Local"),
			filepath.Join(home, "AppData", "Roaming"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Downloads"),
		)
	}
	return roots
}
