package iocli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

// Println, Printf и Write пишут в один поток
func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	stdio := &Stdio{out: &buf}

	stdio.Println("hello", "world")
	stdio.Printf("request %d: %s\n", 1, "queued")
	n, err := stdio.Write([]byte("<request/>"))

	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "hello world\nrequest 1: queued\n<request/>", buf.String())
}

// Тест ReadInput: читаем из буфера вместо os.Stdin
func TestReadInput(t *testing.T) {
	// Подменяем os.Stdin на входящий буфер
	input := "yes\nno\n"
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	// Сохраняем старый os.Stdin и восстанавливаем после
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	var buf bytes.Buffer
	stdio := &Stdio{out: &buf}

	first, err := stdio.ReadInput("Confirm: ")
	assert.NoError(t, err)
	assert.Equal(t, "yes", first)

	// буферизованный ввод не теряется между вызовами
	second, err := stdio.ReadInput("Confirm: ")
	assert.NoError(t, err)
	assert.Equal(t, "no", second)
	assert.Equal(t, 2, strings.Count(buf.String(), "Confirm: "))
}
