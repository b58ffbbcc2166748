// Package fuzztests houses Go fuzz harnesses for the tokenizer presets and
// the template parser. They guard against panics, stalls and broken token
// invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через все диалекты и парсер шаблонов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
