// Package proto holds the wire contract sources.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative labelverify/v1/labelverify.proto
