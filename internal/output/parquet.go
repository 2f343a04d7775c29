package output

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// PositionRecord is the Parquet row written for each report.
type PositionRecord struct {
	Index     int32  `parquet:"name=index, type=INT32"`
	Source    string `parquet:"name=source, type=BYTE_ARRAY, convertedtype=UTF8"`
	Line      int32  `parquet:"name=line, type=INT32"`
	FEN       string `parquet:"name=fen, type=BYTE_ARRAY, convertedtype=UTF8"`
	Turn      string `parquet:"name=turn, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status    string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	MoveCount int32  `parquet:"name=move_count, type=INT32"`
	Hash      string `parquet:"name=hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	Duplicate bool   `parquet:"name=duplicate, type=BOOLEAN"`
	Error     string `parquet:"name=error, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// NewPositionRecord flattens a report into a Parquet row.
func NewPositionRecord(r *PositionReport) PositionRecord {
	return PositionRecord{
		Index:     int32(r.Index),
		Source:    r.Source,
		Line:      int32(r.Line),
		FEN:       r.FEN,
		Turn:      r.Turn,
		Status:    r.Status,
		MoveCount: int32(r.MoveCount),
		Hash:      r.Hash,
		Duplicate: r.Duplicate,
		Error:     r.Error,
	}
}

// ParquetWriter writes reports as Snappy-compressed Parquet rows.
type ParquetWriter struct {
	file   source.ParquetFile
	writer *writer.ParquetWriter
}

// NewParquetWriter creates the file at path and prepares it for rows.
func NewParquetWriter(path string, parallel int64) (*ParquetWriter, error) {
	if parallel < 1 {
		parallel = 1
	}
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, err
	}

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(PositionRecord), parallel)
	if err != nil {
		fileWriter.Close() //nolint:errcheck,gosec // already failing
		return nil, err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	return &ParquetWriter{file: fileWriter, writer: parquetWriter}, nil
}

// WriteReport appends one row.
func (pw *ParquetWriter) WriteReport(r *PositionReport) error {
	return pw.writer.Write(NewPositionRecord(r))
}

// Flush is a no-op; rows are grouped and written on Close.
func (pw *ParquetWriter) Flush() error {
	return nil
}

// Close writes the footer and closes the file.
func (pw *ParquetWriter) Close() error {
	if err := pw.writer.WriteStop(); err != nil {
		pw.file.Close() //nolint:errcheck,gosec // already failing
		return err
	}
	return pw.file.Close()
}

// ReadParquet reads back every row of a file written by ParquetWriter.
func ReadParquet(path string, parallel int64) ([]PositionRecord, error) {
	if parallel < 1 {
		parallel = 1
	}
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(PositionRecord), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	records := make([]PositionRecord, num)
	if num == 0 {
		return records, nil
	}
	if err := parquetReader.Read(&records); err != nil {
		return nil, err
	}
	return records, nil
}
