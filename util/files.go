package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/l10n-kit/po-csv-helper/flag"
	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

// StdioName is the file name standing for stdin or stdout.
const StdioName = "-"

func isUTF8(encoding string) bool {
	switch strings.Replace(strings.ToLower(encoding), "-", "", -1) {
	case "", "utf8":
		return true
	}
	return false
}

// ReadTextFile reads name fully and converts it from encoding to UTF-8.
// An empty encoding means the file is UTF-8 already.
func ReadTextFile(name, encoding string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %w", name, err)
	}
	if isUTF8(encoding) {
		return data, nil
	}
	return ConvertToUTF8(data, encoding)
}

// ConvertToUTF8 converts data from encoding to UTF-8 with iconv.
func ConvertToUTF8(data []byte, encoding string) ([]byte, error) {
	cd, err := iconv.Open("utf-8", encoding)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open failed for %s: %w", encoding, err)
	}
	defer cd.Close()
	log.Debugf("converting %d bytes from %s to utf-8", len(data), encoding)
	return []byte(cd.ConvString(string(data))), nil
}

// WriteOutputFile writes data to name, or to stdout if name is "-". The
// data is written to a temporary file next to name and renamed over it,
// so an existing file is replaced only when the write succeeded. In dryrun
// mode nothing is written.
func WriteOutputFile(name string, data []byte) error {
	if flag.Dryrun() {
		log.Infof("dryrun: would write %d bytes to %s", len(data), name)
		return nil
	}
	if name == StdioName {
		_, err := os.Stdout.Write(data)
		return err
	}

	dir := filepath.Dir(name)
	f, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("fail to create output file for %s: %w", name, err)
	}
	tmpName := f.Name()
	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpName)
		return fmt.Errorf("fail to write %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fail to write %s: %w", name, err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, name); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fail to write %s: %w", name, err)
	}
	return nil
}

// ListFilesWithExt returns the regular files of dir having extension ext
// (case-insensitive), sorted by name.
func ListFilesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ExpandInputFiles turns args into a list of files: directories are
// replaced by their files with extension ext. No args means ".".
func ExpandInputFiles(args []string, ext string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	var files []string
	for _, arg := range args {
		if IsDir(arg) {
			list, err := ListFilesWithExt(arg, ext)
			if err != nil {
				return nil, err
			}
			files = append(files, list...)
			continue
		}
		if !IsFile(arg) {
			return nil, fmt.Errorf("file does not exist: %s", arg)
		}
		files = append(files, arg)
	}
	return files, nil
}
