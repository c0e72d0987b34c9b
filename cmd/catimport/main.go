// Command catimport ejecuta la importación magasin → categoría desde la línea de comandos.
package main

func main() {
	Execute()
}
