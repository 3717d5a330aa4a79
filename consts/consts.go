package consts

const (
	DefaultChunkSize   = 1024 // DefaultChunkSize - сколько байт запрашивается у потока за один вызов read.
	DefaultMaxLineSize = 0    // 0 - без ограничения длины строки.

	DefaultStoreSize = 64
	DefaultShards    = 16
)
