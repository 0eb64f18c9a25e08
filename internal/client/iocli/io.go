// Package iocli - ввод и вывод консольных команд очереди запросов.
package iocli

//go:generate moq -out io_mock.go . IO

// IO - терминал оператора. Отчеты команд идут через Println/Printf,
// экспорт запроса пишется как есть через Write.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput читает строку ответа, например подтверждение удаления
	ReadInput(prompt string) (string, error)
	// ReadPassword читает секрет документов без эха
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
