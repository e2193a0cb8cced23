package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	err     error
	line    int
	done    bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	if !s.next() {
		s.done = true
		return false
	}
	return true
}

func (s *Scanner) next() bool {
	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || codeLine == "") {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.line++

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = &SyntaxError{Line: s.line, Err: err}
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || valueLine == "") {
		// Value 行如果 EOF 也是不完整的
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		s.err = &SyntaxError{Line: s.line + 1, Err: err}
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

// Done 输入已读完或出错
func (s *Scanner) Done() bool {
	return s.done
}

func (s *Scanner) Err() error {
	return s.err
}

// SyntaxError 记录出错的行号
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return "dxf: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }
