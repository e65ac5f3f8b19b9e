package config

var LoadClientConfigFromFs = loadClientConfig
