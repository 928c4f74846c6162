package arch

import (
	"bytes"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dosHeaderSize  = 64
	peOffsetField  = 0x3c
	peSignature    = "PE\x00\x00"
	elfMachineAt   = 18
	elfHeaderBytes = 20
)

// Classify reads the header of the binary at path. It never fails: a missing,
// truncated or unrecognised file yields an Info with BitsUnknown.
func Classify(path string) Info {
	info := Info{BinaryPath: path, BitWidth: BitsUnknown, Platform: PlatformUnknown}

	f, err := os.Open(path)
	if err != nil {
		info.Detail = "binary not found"
		if !errors.Is(err, os.ErrNotExist) {
			info.Detail = fmt.Sprintf("cannot open binary: %v", err)
		}
		return info
	}
	defer f.Close()

	header := make([]byte, dosHeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		info.Detail = "empty or unreadable file"
		return info
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, []byte("MZ")):
		classifyPE(f, header, &info)
	case bytes.HasPrefix(header, []byte(elf.ELFMAG)):
		classifyELF(header, &info)
	case len(header) >= 4 && isMachO(header):
		classifyMachO(header, &info)
	default:
		info.Detail = "unrecognised binary format"
	}

	return info
}

func classifyPE(r io.ReaderAt, header []byte, info *Info) {
	if len(header) < dosHeaderSize {
		info.Detail = "truncated DOS header"
		return
	}

	offset := int64(binary.LittleEndian.Uint32(header[peOffsetField:]))
	buf := make([]byte, len(peSignature)+2)
	if _, err := r.ReadAt(buf, offset); err != nil {
		info.Detail = fmt.Sprintf("PE header at 0x%x unreadable", offset)
		return
	}
	if string(buf[:len(peSignature)]) != peSignature {
		info.Detail = "missing PE signature"
		return
	}

	info.Machine = binary.LittleEndian.Uint16(buf[len(peSignature):])
	switch info.Machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		info.BitWidth, info.Platform = Bits32, PlatformWindows
	case pe.IMAGE_FILE_MACHINE_AMD64:
		info.BitWidth, info.Platform = Bits64, PlatformWindows
	default:
		info.Detail = fmt.Sprintf("unknown machine type: 0x%x", info.Machine)
	}
}

func classifyELF(header []byte, info *Info) {
	if len(header) < elfHeaderBytes {
		info.Detail = "truncated ELF header"
		return
	}

	var order binary.ByteOrder = binary.LittleEndian
	if elf.Data(header[elf.EI_DATA]) == elf.ELFDATA2MSB {
		order = binary.BigEndian
	}
	info.Machine = order.Uint16(header[elfMachineAt:])

	switch elf.Class(header[elf.EI_CLASS]) {
	case elf.ELFCLASS32:
		info.BitWidth, info.Platform = Bits32, PlatformUnix
	case elf.ELFCLASS64:
		info.BitWidth, info.Platform = Bits64, PlatformUnix
	default:
		info.Detail = fmt.Sprintf("unknown ELF class: %d", header[elf.EI_CLASS])
	}
}

func isMachO(header []byte) bool {
	switch binary.LittleEndian.Uint32(header) {
	case macho.Magic32, macho.Magic64:
		return true
	}
	switch binary.BigEndian.Uint32(header) {
	case macho.Magic32, macho.Magic64:
		return true
	}
	return false
}

func classifyMachO(header []byte, info *Info) {
	magic := binary.LittleEndian.Uint32(header)
	if magic != macho.Magic32 && magic != macho.Magic64 {
		magic = binary.BigEndian.Uint32(header)
	}

	info.Platform = PlatformUnix
	if magic == macho.Magic64 {
		info.BitWidth = Bits64
	} else {
		info.BitWidth = Bits32
	}
}

// Find returns the path of the first name present in dir, or "".
func Find(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return path
		}
	}
	return ""
}
