package storage

// IChartStore интерфейс файлового хранилища сгенерированных карт
type IChartStore interface {
	Write(name string, svg []byte) (string, error)
	Read(path string) (string, error)
}
