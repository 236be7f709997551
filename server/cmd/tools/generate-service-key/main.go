package main

import (
	"fmt"
	"log"

	"github.com/shareit-dev/shareit/shared/jwt"
)

func main() {
	key, err := jwt.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate service key: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  Gateway -> server service key (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Add this to config/private.yaml of both services:")
	fmt.Printf("service_key: \"%s\"\n", key)
	fmt.Println()
	fmt.Println("Keep it out of version control. Rotating it requires")
	fmt.Println("restarting the gateway and the server together.")
	fmt.Println("=================================================")
}
