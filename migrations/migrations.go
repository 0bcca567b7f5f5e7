// migrations содержит SQL-миграции схемы, встроенные в бинарь.
// Файлы применяются по возрастанию номера; применяются только *.up.sql.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var files embed.FS

// Up возвращает имена up-миграций в порядке применения.
func Up() ([]string, error) {
	entries, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return number(entries[i]) < number(entries[j])
	})

	return entries, nil
}

// Read возвращает содержимое миграции по имени файла.
func Read(name string) (string, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// number выделяет числовой префикс имени (1_init_oauth.up.sql -> 1).
func number(name string) int {
	prefix, _, _ := strings.Cut(name, "_")
	n, _ := strconv.Atoi(prefix)
	return n
}
