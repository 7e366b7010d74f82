package handler

import jsoniter "github.com/json-iterator/go"

// Serialização das respostas da API via json-iterator, compatível com a stdlib
var json = jsoniter.ConfigCompatibleWithStandardLibrary
